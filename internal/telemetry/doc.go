// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package telemetry owns the tracing side of the service.
//
// It defines the [RootSpan], the top-level logical span created once per
// inbound request, the attribute keys recorded on it, and the
// [Provider] that builds the OpenTelemetry tracer provider together with the
// configured span sink (zerolog console output or an OTLP collector).
//
// The root span travels through the request in its [context.Context]: it is
// the active span of the context, so nested spans started from that context
// become its children, and handlers can reach it with [RootSpanFromContext].
package telemetry
