// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package telemetry

import "go.opentelemetry.io/otel/attribute"

// HTTP attributes recorded on every HTTP root span.
const (
	HTTPMethodKey             = attribute.Key("http.method")
	HTTPFlavorKey             = attribute.Key("http.flavor")
	UserAgentOriginalKey      = attribute.Key("user_agent.original")
	HTTPRouteKey              = attribute.Key("http.route")
	HTTPTargetKey             = attribute.Key("http.target")
	HTTPResponseStatusCodeKey = attribute.Key("http.response.status_code")
)

// RPC attributes recorded on gRPC root spans.
const (
	RPCSystemKey         = attribute.Key("rpc.system")
	RPCServiceKey        = attribute.Key("rpc.service")
	RPCMethodKey         = attribute.Key("rpc.method")
	RPCGRPCStatusCodeKey = attribute.Key("rpc.grpc.status_code")
)

// Log correlation fields.
const (
	FieldTraceID = "trace_id"
	FieldSpanID  = "span_id"
)
