package config

import (
	"fmt"
	"time"
)

// ProbeConfig is the configuration view used by the healthcheck binary.
type ProbeConfig struct {
	// URL is the base URL of the probed service.
	URL string
	// HealthPath is the route appended to URL.
	HealthPath string
	// Timeout bounds a single probe request.
	Timeout time.Duration
	// Attempts is the number of probe requests made before giving up.
	Attempts int
	// Interval is the pause between failed attempts.
	Interval time.Duration
}

// GetProbeConfig builds and validates the probe view from the merged
// structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// the probe needs and validates the resulting [ProbeConfig].
func GetProbeConfig() (*ProbeConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newProbeConfig(cfg)
}

func newProbeConfig(cfg *StructuredConfig) (*ProbeConfig, error) {
	probeCfg := &ProbeConfig{
		URL:        cfg.Probe.URL,
		HealthPath: cfg.Server.HealthPath,
		Timeout:    cfg.Probe.Timeout,
		Attempts:   cfg.Probe.Attempts,
		Interval:   cfg.Probe.Interval,
	}

	return probeCfg, probeCfg.validate()
}
