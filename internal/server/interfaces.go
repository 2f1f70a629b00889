package server

import (
	"context"
	"net"
)

// Server defines the lifecycle contract of the process-level server managed
// by this package.
type Server interface {
	// Run serves every enabled transport until ctx is cancelled or one of
	// them fails, then shuts all of them down gracefully.
	Run(ctx context.Context) error

	// RunServer is Run bound to SIGINT, SIGTERM and SIGQUIT.
	RunServer()

	// Shutdown gracefully stops every transport.
	Shutdown()
}

// transport is one listener owned by the server.
type transport interface {
	name() string
	addr() net.Addr
	// serve blocks until the transport stops and returns nil after a
	// graceful shutdown.
	serve() error
	shutdown(ctx context.Context) error
	// close releases the listener of a transport that never served.
	close() error
}
