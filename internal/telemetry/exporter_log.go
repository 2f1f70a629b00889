// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package telemetry

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-health-server/internal/logger"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// logExporter is the console sink: it writes every finished span as one
// structured log record.
type logExporter struct {
	logger *logger.Logger

	mu      sync.RWMutex
	stopped bool
}

func newLogExporter(logger *logger.Logger) *logExporter {
	return &logExporter{logger: logger}
}

// ExportSpans implements [sdktrace.SpanExporter].
func (e *logExporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.stopped {
		return nil
	}

	for _, span := range spans {
		if err := ctx.Err(); err != nil {
			return err
		}

		sc := span.SpanContext()
		event := e.logger.Info().
			Str("span", span.Name()).
			Str(FieldTraceID, sc.TraceID().String()).
			Str(FieldSpanID, sc.SpanID().String())

		if parent := span.Parent(); parent.IsValid() {
			event = event.Str("parent_span_id", parent.SpanID().String())
		}

		for _, kv := range span.Attributes() {
			event = event.Interface(string(kv.Key), kv.Value.AsInterface())
		}

		event.
			Time("start", span.StartTime()).
			Dur("duration", span.EndTime().Sub(span.StartTime())).
			Msg("span closed")
	}

	return nil
}

// Shutdown implements [sdktrace.SpanExporter].
func (e *logExporter) Shutdown(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopped = true
	return ctx.Err()
}
