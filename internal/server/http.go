package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-health-server/internal/logger"
)

type httpServer struct {
	label    string
	server   *http.Server
	listener net.Listener

	logger *logger.Logger
}

func newHTTPServer(label, address string, handler http.Handler, requestTimeout time.Duration, logger *logger.Logger) (*httpServer, error) {
	lis, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("error listening %s on %s: %w", label, address, err)
	}

	return &httpServer{
		label: label,
		server: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: requestTimeout,
			ReadTimeout:       requestTimeout,
			WriteTimeout:      requestTimeout,
		},
		listener: lis,
		logger:   logger,
	}, nil
}

func (h *httpServer) name() string {
	return h.label
}

func (h *httpServer) addr() net.Addr {
	return h.listener.Addr()
}

func (h *httpServer) serve() error {
	if err := h.server.Serve(h.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (h *httpServer) shutdown(ctx context.Context) error {
	h.logger.Info().Str("transport", h.label).Msg("server shutdown")
	if err := h.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("%s server shutdown: %w", h.label, err)
	}
	return nil
}

func (h *httpServer) close() error {
	return h.listener.Close()
}
