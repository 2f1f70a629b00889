package main

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-health-server/internal/config"
	"github.com/MKhiriev/go-health-server/internal/handler"
	"github.com/MKhiriev/go-health-server/internal/logger"
	"github.com/MKhiriev/go-health-server/internal/metrics"
	"github.com/MKhiriev/go-health-server/internal/server"
	"github.com/MKhiriev/go-health-server/internal/telemetry"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const tracerFlushTimeout = 5 * time.Second

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-health-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	if buildVersion != "N/A" {
		cfg.App.Version = buildVersion
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	provider, err := telemetry.NewProvider(context.Background(), cfg.App, cfg.Telemetry, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating tracer provider")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), tracerFlushTimeout)
		defer cancel()
		if err := provider.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("error flushing spans")
		}
	}()

	collector := metrics.NewCollector(cfg.App.ServiceName)

	handlers, err := handler.NewHandlers(provider, collector, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, collector, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
