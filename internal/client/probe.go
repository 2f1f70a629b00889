package client

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-health-server/internal/adapter"
	"github.com/MKhiriev/go-health-server/internal/config"
	"github.com/MKhiriev/go-health-server/internal/logger"
)

// Probe checks server liveness with a bounded number of attempts.
type Probe struct {
	adapter adapter.HealthAdapter

	attempts int
	interval time.Duration

	logger *logger.Logger
}

// NewProbe builds a probe using the attempts and interval from cfg. At least
// one attempt is always made.
func NewProbe(healthAdapter adapter.HealthAdapter, cfg config.ProbeConfig, logger *logger.Logger) *Probe {
	return &Probe{
		adapter:  healthAdapter,
		attempts: max(cfg.Attempts, 1),
		interval: cfg.Interval,
		logger:   logger,
	}
}

// Run returns nil as soon as one check succeeds. Otherwise it waits interval
// between attempts and, after the last one, returns an error wrapping
// [ErrProbeFailed] and the last check error. Cancelling ctx stops the loop.
func (p *Probe) Run(ctx context.Context) error {
	var lastErr error

	for attempt := 1; attempt <= p.attempts; attempt++ {
		lastErr = p.adapter.CheckHealth(ctx)
		if lastErr == nil {
			p.logger.Info().Int("attempt", attempt).Msg("server is healthy")
			return nil
		}

		p.logger.Warn().Err(lastErr).Int("attempt", attempt).Int("attempts", p.attempts).Msg("health check failed")
		if attempt == p.attempts {
			break
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", ErrProbeFailed, ctx.Err())
		case <-time.After(p.interval):
		}
	}

	return fmt.Errorf("%w after %d attempts: %w", ErrProbeFailed, p.attempts, lastErr)
}
