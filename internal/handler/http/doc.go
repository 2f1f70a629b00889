// Package http implements the HTTP transport of the health server.
//
// It wires the chi router, the liveness route and the middleware chain that
// runs in front of every request: panic recovery, request identifiers, the
// request root span, Prometheus metrics and access logging.
package http
