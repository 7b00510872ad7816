package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-mirror-sync/internal/app"
	"github.com/MKhiriev/go-mirror-sync/internal/config"
	"github.com/MKhiriev/go-mirror-sync/internal/lockfile"
	"github.com/MKhiriev/go-mirror-sync/internal/logger"
	"github.com/MKhiriev/go-mirror-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		return 2
	}

	level := logger.Level(cfg.Log.Verbose, cfg.Log.Quiet)
	log := logger.NewLogger("mirror-sync", level)
	if cfg.Sync.Progress {
		log = logger.NewFileLogger("mirror-sync", cfg.Log.File, level)
	}
	log.Debug().Int("mappings", len(cfg.Mappings)).Int("parallel", cfg.Sync.Parallel).Dur("wait", cfg.Sync.Wait).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	daemon, err := app.NewApp(ctx, cfg, buildInfo, log)
	if errors.Is(err, lockfile.ErrAlreadyRunning) {
		log.Error().Err(err).Str("pid_file", cfg.Sync.PIDFile).Msg("refusing to start")
		return 1
	}
	if err != nil {
		log.Error().Err(err).Msg("init mirror daemon error")
		return 1
	}
	defer daemon.Close()

	if err = daemon.Run(ctx); err != nil {
		log.Error().Err(err).Msg("mirror daemon run error")
		return 1
	}

	return 0
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
