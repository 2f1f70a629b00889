package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-health-server/internal/config"
	"github.com/MKhiriev/go-health-server/internal/logger"
	"github.com/go-resty/resty/v2"
)

const userAgent = "go-health-server-probe"

type httpHealthAdapter struct {
	client     *resty.Client
	healthPath string

	logger *logger.Logger
}

// NewHTTPHealthAdapter constructs the HTTP implementation of
// [HealthAdapter]. cfg.URL may omit the scheme, in which case "http://" is
// assumed. Each request is bounded by cfg.Timeout.
func NewHTTPHealthAdapter(cfg config.ProbeConfig, logger *logger.Logger) (HealthAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid probe url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", userAgent)

	return &httpHealthAdapter{client: client, healthPath: cfg.HealthPath, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// CheckHealth implements [HealthAdapter].
func (h *httpHealthAdapter) CheckHealth(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(h.healthPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnreachable, err)
	}

	h.logger.Debug().
		Int("status", resp.StatusCode()).
		Str("request_id", resp.Header().Get("X-Request-ID")).
		Str("trace_id", resp.Header().Get("X-Trace-ID")).
		Dur("duration", resp.Time()).
		Msg("health response")

	return mapHTTPError(resp)
}
