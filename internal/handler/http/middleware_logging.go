package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-health-server/internal/logger"
)

// withLogging writes one access log entry per request with the request-scoped
// logger, so request_id and trace_id are carried along when present.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := newResponseWriter(w)

		next.ServeHTTP(lw, r)

		log.Info().
			Str("uri", uri).
			Str("method", method).
			Str("route", routePattern(r)).
			Int("status", lw.Status()).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
