// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package telemetry

import "errors"

var (
	// ErrUnknownExporter is returned by [NewProvider] when the configured
	// exporter name is not one of the supported sinks.
	ErrUnknownExporter = errors.New("unknown span exporter")

	// ErrEmptyOTLPEndpoint is returned when an OTLP exporter is selected
	// without a collector endpoint.
	ErrEmptyOTLPEndpoint = errors.New("empty OTLP endpoint")
)
