// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-health-server/internal/logger"
	"github.com/MKhiriev/go-health-server/internal/telemetry"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/propagation"
)

const traceIDHeader = "X-Trace-ID"

// withRootSpan opens one root span per request before any downstream work
// runs and closes it when the request finishes, including when the handler
// panics. The span continues a W3C trace context sent by the caller.
//
// The response status is recorded only when the handler returns normally: a
// panic ends the span without it and keeps unwinding towards Recoverer.
func (h *Handler) withRootSpan(router *chi.Mux) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := h.propagator.Extract(r.Context(), propagation.HeaderCarrier(r.Header))

			ctx, rootSpan := telemetry.NewRootSpan(ctx, h.tracer, r, matchedRoute(router, r))
			defer rootSpan.End()

			l := logger.FromContext(ctx).GetChildLogger()
			if sc := rootSpan.SpanContext(); sc.IsValid() {
				l.UpdateContext(func(c zerolog.Context) zerolog.Context {
					return c.
						Str(telemetry.FieldTraceID, sc.TraceID().String()).
						Str(telemetry.FieldSpanID, sc.SpanID().String())
				})
				w.Header().Set(traceIDHeader, sc.TraceID().String())
			}

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(l.WithContext(ctx)))

			rootSpan.RecordResponse(rw.Status())
		})
	}
}

// matchedRoute resolves the route template for r, or "" when nothing matches.
func matchedRoute(router *chi.Mux, r *http.Request) string {
	path := r.URL.RawPath
	if path == "" {
		path = r.URL.Path
	}
	return router.Find(chi.NewRouteContext(), r.Method, path)
}
