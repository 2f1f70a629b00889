package grpc

import (
	"github.com/MKhiriev/go-health-server/internal/logger"
	"github.com/MKhiriev/go-health-server/internal/metrics"

	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Handler is the root gRPC transport handler.
//
// It serves the standard grpc.health.v1 service, reporting SERVING for the
// whole server until [Handler.Shutdown] flips every service to NOT_SERVING,
// and provides the interceptor that opens one root span per call.
type Handler struct {
	health *health.Server

	tracer     trace.Tracer
	propagator propagation.TextMapPropagator

	// metrics is optional; nil disables RPC counters.
	metrics *metrics.Collector

	logger *logger.Logger
}

// NewHandler constructs a [Handler] whose health service reports SERVING.
func NewHandler(
	tracer trace.Tracer,
	propagator propagation.TextMapPropagator,
	collector *metrics.Collector,
	logger *logger.Logger,
) *Handler {
	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		health:     hs,
		tracer:     tracer,
		propagator: propagator,
		metrics:    collector,
		logger:     logger,
	}
}

// Register attaches the health service to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
}

// ServerOptions returns the options the gRPC server must be built with.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(h.withRootSpan),
	}
}

// Shutdown marks every service NOT_SERVING so load balancers drain the
// instance before the listener closes.
func (h *Handler) Shutdown() {
	h.logger.Info().Msg("gRPC health set to NOT_SERVING")
	h.health.Shutdown()
}
