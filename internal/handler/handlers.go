package handler

import (
	"fmt"

	"github.com/MKhiriev/go-health-server/internal/config"
	"github.com/MKhiriev/go-health-server/internal/handler/grpc"
	"github.com/MKhiriev/go-health-server/internal/handler/http"
	"github.com/MKhiriev/go-health-server/internal/logger"
	"github.com/MKhiriev/go-health-server/internal/metrics"

	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// Tracing is what the transports need from the telemetry layer. It is
// satisfied by *telemetry.Provider.
type Tracing interface {
	Tracer() trace.Tracer
	Propagator() propagation.TextMapPropagator
}

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(tracing Tracing, collector *metrics.Collector, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		h, err := http.NewHandler(cfg, tracing.Tracer(), tracing.Propagator(), collector, logger)
		if err != nil {
			return nil, fmt.Errorf("error creating http handler: %w", err)
		}
		handlers.HTTP = h
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(tracing.Tracer(), tracing.Propagator(), collector, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
