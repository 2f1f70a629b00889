package http

import "net/http"

// healthCheck reports liveness: 200 OK with an empty body.
func (h *Handler) healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
