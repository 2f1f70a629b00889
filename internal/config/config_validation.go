// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.ServiceName == "" {
		return fmt.Errorf("%w: empty service name", ErrInvalidAppConfigs)
	}
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty HTTP address", ErrInvalidServerConfigs)
	}
	if !strings.HasPrefix(cfg.Server.HealthPath, "/") {
		return fmt.Errorf("%w: health path %q must start with /", ErrInvalidServerConfigs, cfg.Server.HealthPath)
	}
	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidServerConfigs)
	}

	switch cfg.Telemetry.Exporter {
	case ExporterConsole, ExporterNone:
	case ExporterOTLPGRPC, ExporterOTLPHTTP:
		if cfg.Telemetry.OTLPEndpoint == "" {
			return fmt.Errorf("%w: %s exporter needs an endpoint", ErrInvalidTelemetryConfigs, cfg.Telemetry.Exporter)
		}
	default:
		return fmt.Errorf("%w: unknown exporter %q", ErrInvalidTelemetryConfigs, cfg.Telemetry.Exporter)
	}
	if cfg.Telemetry.SampleRatio < 0 || cfg.Telemetry.SampleRatio > 1 {
		return fmt.Errorf("%w: sample ratio %v outside [0, 1]", ErrInvalidTelemetryConfigs, cfg.Telemetry.SampleRatio)
	}

	return nil
}

func (cfg *ProbeConfig) validate() error {
	if cfg.URL == "" || !strings.HasPrefix(cfg.HealthPath, "/") {
		return ErrInvalidProbeConfigs
	}

	if cfg.Timeout <= 0 || cfg.Attempts < 1 || cfg.Interval < 0 {
		return ErrInvalidProbeConfigs
	}

	return nil
}
