package telemetry

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

// newRecordingTracer returns a tracer whose finished spans are collected by
// the returned recorder.
func newRecordingTracer(t *testing.T) (trace.Tracer, *tracetest.SpanRecorder) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return tp.Tracer("test"), sr
}

func attrsOf(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	attrs := make(map[attribute.Key]attribute.Value, len(span.Attributes()))
	for _, kv := range span.Attributes() {
		attrs[kv.Key] = kv.Value
	}
	return attrs
}

func TestNewRootSpan_Attributes(t *testing.T) {
	tracer, sr := newRecordingTracer(t)

	req := httptest.NewRequest(http.MethodPost, "/users/42?expand=true", nil)
	req.Header.Set("User-Agent", "curl/8.5.0")

	_, rs := NewRootSpan(context.Background(), tracer, req, "/users/{id}")
	rs.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "HTTP request", spans[0].Name())
	assert.Equal(t, trace.SpanKindServer, spans[0].SpanKind())

	attrs := attrsOf(spans[0])
	assert.Equal(t, "POST", attrs[HTTPMethodKey].AsString())
	assert.Equal(t, "1.1", attrs[HTTPFlavorKey].AsString())
	assert.Equal(t, "curl/8.5.0", attrs[UserAgentOriginalKey].AsString())
	assert.Equal(t, "/users/{id}", attrs[HTTPRouteKey].AsString())
	assert.Equal(t, "/users/42?expand=true", attrs[HTTPTargetKey].AsString())

	_, hasStatus := attrs[HTTPResponseStatusCodeKey]
	assert.False(t, hasStatus, "status code must be unset until the response is recorded")
}

func TestNewRootSpan_UserAgent(t *testing.T) {
	tests := []struct {
		name   string
		header []string
		want   string
	}{
		{name: "missing header", want: ""},
		{name: "plain value", header: []string{"Mozilla/5.0"}, want: "Mozilla/5.0"},
		{name: "tab is allowed", header: []string{"agent\tv1"}, want: "agent\tv1"},
		{name: "non-ascii bytes", header: []string{"agent-\xff\xfe"}, want: ""},
		{name: "utf-8 text", header: []string{"агент"}, want: ""},
		{name: "control byte", header: []string{"agent\x01"}, want: ""},
		{name: "first of many values", header: []string{"first", "second"}, want: "first"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracer, sr := newRecordingTracer(t)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for _, v := range tt.header {
				req.Header.Add("User-Agent", v)
			}

			_, rs := NewRootSpan(context.Background(), tracer, req, "/")
			rs.End()

			spans := sr.Ended()
			require.Len(t, spans, 1)
			ua, ok := attrsOf(spans[0])[UserAgentOriginalKey]
			require.True(t, ok, "user agent attribute must always be present")
			assert.Equal(t, tt.want, ua.AsString())
		})
	}
}

func TestNewRootSpan_Flavor(t *testing.T) {
	tracer, sr := newRecordingTracer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Proto, req.ProtoMajor, req.ProtoMinor = "HTTP/2.0", 2, 0

	_, rs := NewRootSpan(context.Background(), tracer, req, "/")
	rs.End()

	require.Len(t, sr.Ended(), 1)
	assert.Equal(t, "2.0", attrsOf(sr.Ended()[0])[HTTPFlavorKey].AsString())
}

func TestNewRootSpan_ContextCarriesSpan(t *testing.T) {
	tracer, sr := newRecordingTracer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx, rs := NewRootSpan(context.Background(), tracer, req, "/")

	fromCtx, ok := RootSpanFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, rs.SpanContext(), fromCtx.SpanContext())
	assert.Equal(t, rs.SpanContext(), trace.SpanContextFromContext(ctx))

	_, child := tracer.Start(ctx, "nested")
	child.End()
	rs.End()

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "nested", spans[0].Name())
	assert.Equal(t, rs.SpanContext().SpanID(), spans[0].Parent().SpanID())
}

func TestRootSpan_RecordResponse(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "ok", status: http.StatusOK},
		{name: "no content", status: http.StatusNoContent},
		{name: "not found", status: http.StatusNotFound},
		{name: "internal error", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracer, sr := newRecordingTracer(t)

			_, rs := NewRootSpan(context.Background(), tracer, httptest.NewRequest(http.MethodGet, "/", nil), "/")
			rs.RecordResponse(tt.status)
			rs.End()

			spans := sr.Ended()
			require.Len(t, spans, 1)
			assert.Equal(t, int64(tt.status), attrsOf(spans[0])[HTTPResponseStatusCodeKey].AsInt64())
		})
	}
}

// TestRootSpan_RecordResponse_SingleField verifies that copies share the
// span: whatever is recorded last is the one status field on the span.
func TestRootSpan_RecordResponse_SingleField(t *testing.T) {
	tracer, sr := newRecordingTracer(t)

	ctx, rs := NewRootSpan(context.Background(), tracer, httptest.NewRequest(http.MethodGet, "/", nil), "/")
	clone, ok := RootSpanFromContext(ctx)
	require.True(t, ok)

	clone.RecordResponse(http.StatusTeapot)
	rs.RecordResponse(http.StatusBadGateway)
	rs.RecordResponse(http.StatusOK)
	rs.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)

	var count int
	for _, kv := range spans[0].Attributes() {
		if kv.Key == HTTPResponseStatusCodeKey {
			count++
			assert.Equal(t, int64(http.StatusOK), kv.Value.AsInt64())
		}
	}
	assert.Equal(t, 1, count)
}

func TestRootSpan_ZeroValueIsSafe(t *testing.T) {
	var rs RootSpan
	assert.NotPanics(t, func() {
		rs.RecordResponse(http.StatusOK)
		rs.RecordRPCStatus(0)
		rs.End()
	})
	assert.False(t, rs.SpanContext().IsValid())

	_, ok := RootSpanFromContext(context.Background())
	assert.False(t, ok)
}

func TestNewRPCRootSpan(t *testing.T) {
	tracer, sr := newRecordingTracer(t)

	_, rs := NewRPCRootSpan(context.Background(), tracer, "/grpc.health.v1.Health/Check", "grpc-go/1.78.0")
	rs.RecordRPCStatus(0)
	rs.RecordRPCStatus(5)
	rs.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "gRPC request", spans[0].Name())

	attrs := attrsOf(spans[0])
	assert.Equal(t, "grpc", attrs[RPCSystemKey].AsString())
	assert.Equal(t, "grpc.health.v1.Health", attrs[RPCServiceKey].AsString())
	assert.Equal(t, "Check", attrs[RPCMethodKey].AsString())
	assert.Equal(t, "grpc-go/1.78.0", attrs[UserAgentOriginalKey].AsString())
	assert.Equal(t, int64(5), attrs[RPCGRPCStatusCodeKey].AsInt64())
}

// TestNewRootSpan_ConcurrentIsolation fires many requests with distinct
// headers and routes and checks that no span carries another request's data.
func TestNewRootSpan_ConcurrentIsolation(t *testing.T) {
	tracer, sr := newRecordingTracer(t)

	const n = 64
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/items/%d", i), nil)
			req.Header.Set("User-Agent", fmt.Sprintf("agent-%d", i))

			_, rs := NewRootSpan(context.Background(), tracer, req, fmt.Sprintf("/items/{id%d}", i))
			rs.RecordResponse(200 + i)
			rs.End()
		}()
	}
	wg.Wait()

	spans := sr.Ended()
	require.Len(t, spans, n)
	for _, span := range spans {
		attrs := attrsOf(span)
		var i int
		_, err := fmt.Sscanf(attrs[UserAgentOriginalKey].AsString(), "agent-%d", &i)
		require.NoError(t, err)

		assert.Equal(t, fmt.Sprintf("/items/%d", i), attrs[HTTPTargetKey].AsString())
		assert.Equal(t, fmt.Sprintf("/items/{id%d}", i), attrs[HTTPRouteKey].AsString())
		assert.Equal(t, int64(200+i), attrs[HTTPResponseStatusCodeKey].AsInt64())
	}
}
