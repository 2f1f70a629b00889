package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-health-server/internal/adapter"
	"github.com/MKhiriev/go-health-server/internal/client"
	"github.com/MKhiriev/go-health-server/internal/config"
	"github.com/MKhiriev/go-health-server/internal/logger"
)

// healthcheck exits 0 when the server answers its health route and 1
// otherwise, so it can back a container HEALTHCHECK.
func main() {
	log := logger.NewLogger("healthcheck")

	cfg, err := config.GetProbeConfig()
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		os.Exit(1)
	}

	healthAdapter, err := adapter.NewHTTPHealthAdapter(*cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating health adapter")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	var probe client.Client = client.NewProbe(healthAdapter, *cfg, log)
	if err = probe.Run(ctx); err != nil {
		log.Error().Err(err).Msg("server is not healthy")
		stop()
		os.Exit(1)
	}
}
