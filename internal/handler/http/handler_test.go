package http

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-health-server/internal/config"
	"github.com/MKhiriev/go-health-server/internal/logger"
	"github.com/MKhiriev/go-health-server/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// newTracedHandler returns a Handler serving /health whose root spans are
// collected by the returned recorder.
func newTracedHandler(t *testing.T, collector *metrics.Collector, log *logger.Logger) (*Handler, *tracetest.SpanRecorder) {
	t.Helper()

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	h, err := NewHandler(
		config.Server{HealthPath: "/health"},
		tp.Tracer("test"),
		propagation.TraceContext{},
		collector,
		log,
	)
	require.NoError(t, err)

	return h, sr
}

func spanAttrs(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	attrs := make(map[attribute.Key]attribute.Value, len(span.Attributes()))
	for _, kv := range span.Attributes() {
		attrs[kv.Key] = kv.Value
	}
	return attrs
}

func TestNewHandler(t *testing.T) {
	log := logger.Nop()
	collector := metrics.NewCollector("test")

	h, err := NewHandler(config.Server{HealthPath: "/livez"}, nil, propagation.TraceContext{}, collector, log)

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.Equal(t, "/livez", h.healthPath)
	assert.Same(t, collector, h.metrics)
	assert.Same(t, log, h.logger)
	assert.NotNil(t, h.requestIDs)
}

func TestNewHandler_EmptyHealthPath(t *testing.T) {
	h, err := NewHandler(config.Server{}, nil, propagation.TraceContext{}, nil, logger.Nop())

	require.ErrorIs(t, err, ErrEmptyHealthPath)
	assert.Nil(t, h)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1, _ := newTracedHandler(t, nil, logger.Nop())
	h2, _ := newTracedHandler(t, nil, logger.Nop())

	assert.NotSame(t, h1, h2)
}
