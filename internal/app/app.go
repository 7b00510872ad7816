package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-mirror-sync/internal/adapter"
	"github.com/MKhiriev/go-mirror-sync/internal/config"
	statusapi "github.com/MKhiriev/go-mirror-sync/internal/handler/http"
	"github.com/MKhiriev/go-mirror-sync/internal/lockfile"
	"github.com/MKhiriev/go-mirror-sync/internal/logger"
	"github.com/MKhiriev/go-mirror-sync/internal/metrics"
	"github.com/MKhiriev/go-mirror-sync/internal/server"
	"github.com/MKhiriev/go-mirror-sync/internal/service"
	"github.com/MKhiriev/go-mirror-sync/internal/store"
	"github.com/MKhiriev/go-mirror-sync/internal/tui"
	"github.com/MKhiriev/go-mirror-sync/internal/workers"
	"github.com/MKhiriev/go-mirror-sync/models"
	"github.com/mattn/go-isatty"
)

type App struct {
	lock     *lockfile.Lock
	journal  store.Journal
	services *service.Services
	status   service.StatusService
	workers  *workers.Workers

	logger *logger.Logger
}

// NewApp acquires the single-instance lock and wires the daemon. The
// caller must Close the returned App.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	return newApp(ctx, cfg, buildInfo, service.Dependencies{}, logger)
}

func newApp(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, deps service.Dependencies, logger *logger.Logger) (app *App, err error) {
	lock, err := lockfile.Acquire(cfg.Sync.PIDFile, cfg.Sync.Override, logger)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			lock.Release()
		}
	}()

	journal, err := store.NewJournal(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create journal: %w", err)
	}
	defer func() {
		if err != nil {
			_ = journal.Close()
		}
	}()

	remote, err := adapter.NewHTTPRemoteAdapter(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create remote adapter: %w", err)
	}

	recorder := metrics.New()

	var progress *tui.Progress
	if cfg.Sync.Progress {
		if isatty.IsTerminal(os.Stdout.Fd()) {
			progress = tui.NewProgress(cfg.Sync.Parallel)
			deps.Progress = progress
		} else {
			logger.Warn().Str("func", "app.NewApp").Msg("stdout is not a terminal, progress view disabled")
		}
	}

	deps.Adapter = remote
	deps.Fetcher = adapter.NewHTTPContentFetcher(cfg.Adapter, logger)
	deps.Journal = journal
	deps.Metrics = recorder
	services := service.NewServices(*cfg, deps, logger)
	status := service.NewStatusService(services.Driver, services.Scheduler, buildInfo, logger)

	ws := workers.New(logger)
	ws.Add("cycle-driver", services.Driver)

	srv, err := server.NewServer(statusapi.NewHandler(status, journal, recorder, logger), cfg.Server, logger)
	switch {
	case errors.Is(err, server.ErrNoStatusAddress):
		logger.Debug().Str("func", "app.NewApp").Msg("status api disabled")
	case err != nil:
		return nil, fmt.Errorf("create status server: %w", err)
	default:
		ws.Add("status-server", srv)
	}

	if progress != nil {
		ws.Add("progress-view", tui.New(progress, status, buildInfo, logger))
	}

	return &App{
		lock:     lock,
		journal:  journal,
		services: services,
		status:   status,
		workers:  ws,
		logger:   logger,
	}, nil
}

// Run mirrors until the last cycle finished, ctx ended or the user closed
// the progress view.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Str("func", "*App.Run").Msg("mirror daemon started")

	err := a.workers.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		err = nil
	}

	a.logger.Info().
		Str("func", "*App.Run").
		Str("state", string(a.status.Status(context.WithoutCancel(ctx)).Driver.State)).
		Msg("mirror daemon stopped")
	return err
}

// Close releases the journal and the single-instance lock.
func (a *App) Close() error {
	err := a.journal.Close()
	a.lock.Release()
	return err
}
