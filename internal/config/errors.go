package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid service identity settings
	// (for example, an empty service name or an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid listener settings
	// (for example, no HTTP address or a health path without a leading "/").
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidTelemetryConfigs indicates invalid tracing settings
	// (for example, an unknown exporter or a sample ratio outside [0, 1]).
	ErrInvalidTelemetryConfigs = errors.New("invalid telemetry configuration")
	// ErrInvalidProbeConfigs indicates invalid healthcheck probe settings
	// (for example, an empty URL or zero attempts).
	ErrInvalidProbeConfigs = errors.New("invalid probe configuration")
)
