package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/giftharmony/giftharmony/internal/api"
	"github.com/giftharmony/giftharmony/internal/config"
	"github.com/giftharmony/giftharmony/internal/logger"
	"github.com/giftharmony/giftharmony/internal/setup"
)

const probeTimeout = 10 * time.Second

// giftharmony wires the long-lived dependencies and runs the startup
// checks: database connectivity and API reachability. Exit code 0 means
// both collaborators answered.
func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to yaml config file (optional)")
	flag.Parse()

	cfg := config.MustLoad(configPath)
	logger.Initialize(cfg.LogLevel, cfg.LogJSON)

	deps, err := setup.SetupDependencies(cfg)
	if err != nil {
		logger.Log.Error("startup failed", "error", err)
		os.Exit(1)
	}
	defer deps.Cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	if _, err := deps.Client.Products(ctx, api.ProductFilters{Limit: 1}); err != nil {
		logger.Log.Error("api probe failed", "api", cfg.ApiBaseURL, "error", err)
		os.Exit(1)
	}

	logger.Log.Info("startup checks passed", "api", cfg.ApiBaseURL, "db", cfg.Pg.Host)
}
