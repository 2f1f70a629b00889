// Package server wires and runs the application's transport servers.
//
// It owns the HTTP, gRPC and Prometheus metrics listeners and drives their
// lifecycle: startup, signal handling and graceful shutdown bounded by the
// configured timeout.
package server
