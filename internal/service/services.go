package service

import (
	"github.com/MKhiriev/go-mirror-sync/internal/adapter"
	"github.com/MKhiriev/go-mirror-sync/internal/config"
	"github.com/MKhiriev/go-mirror-sync/internal/logger"
	"github.com/MKhiriev/go-mirror-sync/internal/store"
	"github.com/MKhiriev/go-mirror-sync/internal/utils"
	"github.com/MKhiriev/go-mirror-sync/models"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"
)

// Dependencies are the external collaborators of the sync engine.
type Dependencies struct {
	Adapter  adapter.RemoteAdapter
	Fetcher  adapter.ContentFetcher
	Journal  store.Journal
	Metrics  MetricsRecorder
	Progress ProgressReporter
	FS       afero.Fs
	Clock    clockwork.Clock
}

// Services is the wired sync engine.
type Services struct {
	Resolver   Resolver
	Reconciler Reconciler
	Scheduler  Scheduler
	Transfer   Transferer
	Deletion   DeletionPolicy
	Completion CompletionHandler
	Driver     CycleDriver
	Stats      *models.CycleStats
}

// NewServices wires the sync engine. Optional dependencies left nil fall
// back to no-op or operating-system implementations.
func NewServices(cfg config.StructuredConfig, deps Dependencies, logger *logger.Logger) *Services {
	if deps.Progress == nil {
		deps.Progress = NopProgress{}
	}
	if deps.Metrics == nil {
		deps.Metrics = NopMetrics{}
	}
	if deps.Journal == nil {
		deps.Journal = store.NewNopJournal()
	}
	if deps.FS == nil {
		deps.FS = afero.NewOsFs()
	}
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}

	stats := new(models.CycleStats)

	deletion := NewDeletionService(deps.Adapter, stats, deps.Metrics, logger)
	completion := NewCompletionService(deletion, deps.Journal, stats, deps.Metrics, logger)
	transfer := NewTransferService(deps.Adapter, deps.Fetcher, deps.FS, deps.Progress, deps.Clock, logger)
	scheduler := NewDownloadScheduler(cfg.Sync.Parallel, transfer, completion, deps.Metrics, logger)
	resolver := NewResolverService(deps.Adapter, logger)
	reconciler := NewReconcilerService(deps.Adapter, deps.FS, scheduler, deletion, stats, deps.Metrics, DefaultRecursionLimit, logger)

	driver := NewCycleDriver(cfg.Mappings, cfg.Sync.Wait, CycleDriverDeps{
		Resolver:   resolver,
		Reconciler: reconciler,
		Scheduler:  scheduler,
		Journal:    deps.Journal,
		Stats:      stats,
		Metrics:    deps.Metrics,
		FS:         deps.FS,
		Clock:      deps.Clock,
		IDs:        utils.NewUUIDGenerator(),
	}, logger)

	return &Services{
		Resolver:   resolver,
		Reconciler: reconciler,
		Scheduler:  scheduler,
		Transfer:   transfer,
		Deletion:   deletion,
		Completion: completion,
		Driver:     driver,
		Stats:      stats,
	}
}
