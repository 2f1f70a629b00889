package config

import "time"

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			ServiceName: "go-health-server",
			Version:     "dev",
			Environment: "development",
			LogLevel:    "debug",
		},
		Server: Server{
			HTTPAddress:     "0.0.0.0:8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			HealthPath:      "/health",
		},
		Telemetry: Telemetry{
			Exporter:    ExporterConsole,
			SampleRatio: 1,
		},
		Probe: Probe{
			URL:      "http://localhost:8080",
			Timeout:  2 * time.Second,
			Attempts: 3,
			Interval: time.Second,
		},
	}
}
