package server

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-health-server/internal/config"
	"github.com/MKhiriev/go-health-server/internal/handler"
	"github.com/MKhiriev/go-health-server/internal/logger"
	"github.com/MKhiriev/go-health-server/internal/metrics"
	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"
)

const metricsPath = "/metrics"

type server struct {
	transports      []transport
	shutdownTimeout time.Duration

	logger *logger.Logger
}

// NewServer opens a listener for every configured transport. collector may
// be nil, in which case no metrics listener is started.
func NewServer(handlers *handler.Handlers, collector *metrics.Collector, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		s, err := newHTTPServer("http", cfg.HTTPAddress, handlers.HTTP.Init(), cfg.RequestTimeout, logger)
		if err != nil {
			return nil, servers.closeOnError(err)
		}
		servers.transports = append(servers.transports, s)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		s, err := newGRPCServer(handlers.GRPC, cfg.GRPCAddress, logger)
		if err != nil {
			return nil, servers.closeOnError(err)
		}
		servers.transports = append(servers.transports, s)
	}
	if cfg.MetricsAddress != "" && collector != nil {
		router := chi.NewRouter()
		router.Handle(metricsPath, collector.Handler())

		s, err := newHTTPServer("metrics", cfg.MetricsAddress, router, cfg.RequestTimeout, logger)
		if err != nil {
			return nil, servers.closeOnError(err)
		}
		servers.transports = append(servers.transports, s)
	}

	// the metrics listener alone does not make a server
	if servers.serving() == 0 {
		_ = servers.closeOnError(nil)
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.Run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
		return
	}
	s.logger.Info().Msg("server Shutdown gracefully")
}

func (s *server) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, t := range s.transports {
		g.Go(func() error {
			s.logger.Info().Str("transport", t.name()).Str("address", t.addr().String()).Msg("launching server")
			if err := t.serve(); err != nil {
				return fmt.Errorf("%s server: %w", t.name(), err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		return s.shutdown()
	})

	return g.Wait()
}

func (s *server) Shutdown() {
	if err := s.shutdown(); err != nil {
		s.logger.Error().Err(err).Msg("error shutting down server")
	}
}

// shutdown stops every transport within the shutdown timeout.
func (s *server) shutdown() error {
	ctx := context.Background()
	if s.shutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.shutdownTimeout)
		defer cancel()
	}

	var errs []error
	for _, t := range s.transports {
		if err := t.shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (s *server) serving() int {
	var n int
	for _, t := range s.transports {
		if t.name() != "metrics" {
			n++
		}
	}
	return n
}

// closeOnError releases the listeners opened so far and passes err through.
func (s *server) closeOnError(err error) error {
	for _, t := range s.transports {
		_ = t.close()
	}
	return err
}
