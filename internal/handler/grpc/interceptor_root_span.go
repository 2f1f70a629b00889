// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-health-server/internal/telemetry"
	"github.com/rs/zerolog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// withRootSpan is the unary counterpart of the HTTP root span middleware:
// one root span per call, a request-scoped logger carrying the trace ids, the
// gRPC status code recorded on return and a log line per call. A failed call
// also leaves an exception event on the span.
func (h *Handler) withRootSpan(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	md, _ := metadata.FromIncomingContext(ctx)
	ctx = h.propagator.Extract(ctx, metadataCarrier(md))

	var ua string
	if v := md.Get("user-agent"); len(v) > 0 {
		ua = telemetry.SanitizeUserAgent(v[0])
	}

	ctx, rootSpan := telemetry.NewRPCRootSpan(ctx, h.tracer, info.FullMethod, ua)
	defer rootSpan.End()

	l := h.logger.GetChildLogger()
	if sc := rootSpan.SpanContext(); sc.IsValid() {
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.
				Str(telemetry.FieldTraceID, sc.TraceID().String()).
				Str(telemetry.FieldSpanID, sc.SpanID().String())
		})
	}

	start := time.Now()
	resp, err := handler(l.WithContext(ctx), req)
	code := status.Code(err)

	rootSpan.RecordRPCStatus(uint32(code))
	if err != nil {
		rootSpan.Inner().RecordError(err)
	}
	if h.metrics != nil {
		h.metrics.GRPCRequests.WithLabelValues(info.FullMethod, code.String()).Inc()
	}

	l.Info().
		Str("method", info.FullMethod).
		Str("code", code.String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}
