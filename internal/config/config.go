// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Span exporters understood by the telemetry layer.
const (
	// ExporterConsole writes finished spans to the application log.
	ExporterConsole = "console"
	// ExporterOTLPGRPC ships spans to an OpenTelemetry collector over gRPC.
	ExporterOTLPGRPC = "otlp-grpc"
	// ExporterOTLPHTTP ships spans to an OpenTelemetry collector over HTTP.
	ExporterOTLPHTTP = "otlp-http"
	// ExporterNone keeps spans in-process only.
	ExporterNone = "none"
)

// StructuredConfig is the top-level configuration container for the
// service. It is populated by merging defaults, environment variables,
// command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds service identity and logging settings.
	App App `envPrefix:"APP_"`

	// Server holds listener addresses, timeouts and the health route.
	Server Server `envPrefix:"SERVER_"`

	// Telemetry selects the span sink and the sampling ratio.
	Telemetry Telemetry `envPrefix:"TELEMETRY_"`

	// Probe configures the healthcheck binary.
	Probe Probe `envPrefix:"PROBE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds the identity of the running service.
type App struct {
	// ServiceName is reported as the "service.name" resource attribute and
	// used as the tracer and metrics namespace.
	// Env: APP_SERVICE_NAME
	ServiceName string `env:"SERVICE_NAME"`

	// Version is the semantic version of the running build.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// Environment is the deployment environment (e.g. "production").
	// Env: APP_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address on which the gRPC health service
	// listens. Empty disables the gRPC server.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// MetricsAddress is the TCP address serving Prometheus metrics. Empty
	// disables the metrics listener.
	// Env: SERVER_METRICS_ADDRESS
	MetricsAddress string `env:"METRICS_ADDRESS"`

	// RequestTimeout bounds reading a request and writing its response.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown of all listeners.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// HealthPath is the liveness route, "/health" by default.
	// Env: SERVER_HEALTH_PATH
	HealthPath string `env:"HEALTH_PATH"`
}

// Telemetry holds tracing settings.
type Telemetry struct {
	// Exporter is one of "console", "otlp-grpc", "otlp-http" or "none".
	// Env: TELEMETRY_EXPORTER
	Exporter string `env:"EXPORTER"`

	// OTLPEndpoint is the collector "host:port" used by the OTLP exporters.
	// Env: TELEMETRY_OTLP_ENDPOINT
	OTLPEndpoint string `env:"OTLP_ENDPOINT"`

	// OTLPInsecure disables TLS towards the collector.
	// Env: TELEMETRY_OTLP_INSECURE
	OTLPInsecure bool `env:"OTLP_INSECURE"`

	// SampleRatio is the fraction of new traces that are sampled, in [0, 1].
	// Env: TELEMETRY_SAMPLE_RATIO
	SampleRatio float64 `env:"SAMPLE_RATIO"`
}

// Probe configures the healthcheck binary.
type Probe struct {
	// URL is the base URL of the service to probe.
	// Env: PROBE_URL
	URL string `env:"URL"`

	// Timeout bounds a single probe request.
	// Env: PROBE_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// Attempts is the number of probe requests made before giving up.
	// Env: PROBE_ATTEMPTS
	Attempts int `env:"ATTEMPTS"`

	// Interval is the pause between failed attempts.
	// Env: PROBE_INTERVAL
	Interval time.Duration `env:"INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override non-zero fields of earlier ones):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder(os.Args[1:]).
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
