package http

import (
	"github.com/MKhiriev/go-health-server/internal/config"
	"github.com/MKhiriev/go-health-server/internal/logger"
	"github.com/MKhiriev/go-health-server/internal/metrics"
	"github.com/MKhiriev/go-health-server/internal/utils"

	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// Handler serves the liveness route and owns what the middleware chain needs:
// the tracer and propagator for root spans, the optional metrics collector
// and the request id generator.
type Handler struct {
	healthPath string

	tracer     trace.Tracer
	propagator propagation.TextMapPropagator
	metrics    *metrics.Collector
	requestIDs *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. collector may be nil, in which case no
// request metrics are recorded.
func NewHandler(
	cfg config.Server,
	tracer trace.Tracer,
	propagator propagation.TextMapPropagator,
	collector *metrics.Collector,
	logger *logger.Logger,
) (*Handler, error) {
	if cfg.HealthPath == "" {
		return nil, ErrEmptyHealthPath
	}

	logger.Info().Str("health_path", cfg.HealthPath).Msg("http handler created")
	return &Handler{
		healthPath: cfg.HealthPath,
		tracer:     tracer,
		propagator: propagator,
		metrics:    collector,
		requestIDs: utils.NewUUIDGenerator(),
		logger:     logger,
	}, nil
}
