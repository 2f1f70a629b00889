// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package telemetry

import (
	"context"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	httpRootSpanName = "HTTP request"
	rpcRootSpanName  = "gRPC request"
)

// RootSpan is the top-level logical span of one inbound request.
//
// It is not necessarily the top-level physical span: when the caller
// propagates a trace context the root span becomes a child of the remote
// span. The root span collects everything known about the request when it is
// created and the outcome of the request once the handler returns.
//
// RootSpan is a small value. Copies share the underlying [trace.Span], so
// the outcome attribute exists once per request regardless of how many
// copies are handed around: a later record replaces an earlier one.
type RootSpan struct {
	span trace.Span
}

type rootSpanCtxKey struct{}

// NewRootSpan starts the root span for an HTTP request and returns a context
// in which it is both the active span and retrievable via
// [RootSpanFromContext].
//
// route is the matched route template, or an empty string when no route
// matched. "http.response.status_code" is left unset until
// [RootSpan.RecordResponse] is called.
func NewRootSpan(ctx context.Context, tracer trace.Tracer, r *http.Request, route string) (context.Context, RootSpan) {
	return startRootSpan(ctx, tracer, httpRootSpanName,
		HTTPMethodKey.String(r.Method),
		HTTPFlavorKey.String(HTTPFlavor(r.ProtoMajor, r.ProtoMinor, r.Proto)),
		UserAgentOriginalKey.String(userAgent(r.Header)),
		HTTPRouteKey.String(route),
		HTTPTargetKey.String(requestTarget(r)),
	)
}

// NewRPCRootSpan starts the root span for a unary gRPC call. fullMethod has
// the "/package.Service/Method" form reported by grpc.UnaryServerInfo.
func NewRPCRootSpan(ctx context.Context, tracer trace.Tracer, fullMethod, ua string) (context.Context, RootSpan) {
	service, method := splitFullMethod(fullMethod)

	return startRootSpan(ctx, tracer, rpcRootSpanName,
		RPCSystemKey.String("grpc"),
		RPCServiceKey.String(service),
		RPCMethodKey.String(method),
		UserAgentOriginalKey.String(ua),
	)
}

func startRootSpan(ctx context.Context, tracer trace.Tracer, name string, attrs ...attribute.KeyValue) (context.Context, RootSpan) {
	ctx, span := tracer.Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(attrs...),
	)

	rs := RootSpan{span: span}
	return ContextWithRootSpan(ctx, rs), rs
}

// RecordResponse records the response status code on the span, replacing
// any status recorded before.
func (s RootSpan) RecordResponse(statusCode int) {
	s.recordOutcome(HTTPResponseStatusCodeKey.Int(statusCode))
}

// RecordRPCStatus records the numeric gRPC status code on the span,
// replacing any code recorded before.
func (s RootSpan) RecordRPCStatus(code uint32) {
	s.recordOutcome(RPCGRPCStatusCodeKey.Int64(int64(code)))
}

func (s RootSpan) recordOutcome(kv attribute.KeyValue) {
	if s.span == nil {
		return
	}
	s.span.SetAttributes(kv)
}

// Inner returns the underlying [trace.Span] for recording errors and events
// that have no dedicated method here. It is nil for the zero RootSpan.
func (s RootSpan) Inner() trace.Span {
	return s.span
}

// SpanContext returns the span context of the root span, or an empty one for
// the zero RootSpan.
func (s RootSpan) SpanContext() trace.SpanContext {
	if s.span == nil {
		return trace.SpanContext{}
	}
	return s.span.SpanContext()
}

// End completes the span.
func (s RootSpan) End() {
	if s.span != nil {
		s.span.End()
	}
}

// ContextWithRootSpan returns a copy of ctx carrying rs.
func ContextWithRootSpan(ctx context.Context, rs RootSpan) context.Context {
	return context.WithValue(ctx, rootSpanCtxKey{}, rs)
}

// RootSpanFromContext returns the root span stored in ctx by [NewRootSpan]
// or [ContextWithRootSpan].
func RootSpanFromContext(ctx context.Context) (RootSpan, bool) {
	rs, ok := ctx.Value(rootSpanCtxKey{}).(RootSpan)
	return rs, ok
}

// requestTarget returns the path and query string of the request.
func requestTarget(r *http.Request) string {
	if r.URL == nil {
		return ""
	}
	return r.URL.RequestURI()
}

func splitFullMethod(fullMethod string) (service, method string) {
	name := strings.TrimPrefix(fullMethod, "/")
	if i := strings.LastIndex(name, "/"); i >= 0 {
		return name[:i], name[i+1:]
	}
	return "", name
}
