package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Recoverer sits outside the root span middleware so
// a panicking handler still unwinds through it and the span is ended.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withRequestID)
	router.Use(h.withRootSpan(router))
	if h.metrics != nil {
		router.Use(h.withMetrics)
	}
	router.Use(withLogging)

	router.Get(h.healthPath, h.healthCheck)

	return router
}
