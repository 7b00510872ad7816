package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-mirror-sync/internal/logger"
	"github.com/MKhiriev/go-mirror-sync/internal/store"
	"github.com/MKhiriev/go-mirror-sync/internal/utils"
	"github.com/MKhiriev/go-mirror-sync/models"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"
)

// SafetyDelay is how long after a cycle starts the driver re-checks for
// quiescence on its own, covering cycles that produce no task at all.
const SafetyDelay = 5 * time.Second

// CycleDriverDeps groups the collaborators of the cycle driver.
type CycleDriverDeps struct {
	Resolver   Resolver
	Reconciler Reconciler
	Scheduler  Scheduler
	Journal    store.Journal
	Stats      *models.CycleStats
	Metrics    MetricsRecorder
	FS         afero.Fs
	Clock      clockwork.Clock
	IDs        IDGenerator
}

type cycleDriver struct {
	mappings []models.Mapping
	wait     time.Duration
	deps     CycleDriverDeps

	mu        sync.Mutex
	runCtx    context.Context
	state     models.CycleState
	cycleID   string
	startedAt time.Time
	nextAt    time.Time
	pending   int
	safety    clockwork.Timer
	timer     clockwork.Timer
	last      *models.CycleSummary
	done      chan struct{}

	wg sync.WaitGroup

	logger *logger.Logger
}

// NewCycleDriver creates a CycleDriver syncing mappings. A positive wait
// schedules the next cycle that long after the previous one drained; zero
// runs a single cycle.
func NewCycleDriver(mappings []models.Mapping, wait time.Duration, deps CycleDriverDeps, logger *logger.Logger) CycleDriver {
	d := &cycleDriver{
		mappings: mappings,
		wait:     wait,
		deps:     deps,
		state:    models.CycleIdle,
		done:     make(chan struct{}),
		logger:   logger,
	}

	deps.Scheduler.SetHooks(SchedulerHooks{
		OnEnqueue: d.onEnqueue,
		OnDrained: d.checkQuiescent,
	})

	return d
}

// Run implements CycleDriver. It starts the first cycle and blocks until the
// last cycle finished (wait == 0) or ctx is cancelled. In both cases it
// returns after every reconciliation and transfer goroutine has exited.
func (d *cycleDriver) Run(ctx context.Context) error {
	d.mu.Lock()
	d.runCtx = ctx
	d.mu.Unlock()

	if err := d.StartCycle(ctx); err != nil {
		return err
	}

	select {
	case <-d.done:
	case <-ctx.Done():
		d.stop()
		d.logger.Info().
			Str("func", "cycleDriver.Run").
			Msg("shutdown requested, waiting for running work")
	}

	d.wg.Wait()
	d.deps.Scheduler.Wait()
	return nil
}

// StartCycle implements CycleDriver. It moves the driver into Running,
// resets the per-cycle counters and reconciles every mapping in its own
// goroutine.
func (d *cycleDriver) StartCycle(ctx context.Context) error {
	d.mu.Lock()
	if d.state == models.CycleRunning || d.state == models.CycleDraining {
		d.mu.Unlock()
		return ErrCycleInProgress
	}
	if d.state == models.CycleStopped {
		d.mu.Unlock()
		return nil
	}

	d.stopTimers()
	d.cycleID = d.deps.IDs.Generate()
	d.startedAt = d.deps.Clock.Now()
	d.nextAt = time.Time{}
	d.state = models.CycleRunning
	d.pending = len(d.mappings)
	d.deps.Stats.Reset()
	d.deps.Scheduler.Reset()
	d.safety = d.deps.Clock.AfterFunc(SafetyDelay, d.checkQuiescent)
	cycleID, startedAt := d.cycleID, d.startedAt
	d.mu.Unlock()

	log := d.logger.WithCycle(cycleID)
	log.Info().
		Str("func", "cycleDriver.StartCycle").
		Int("mappings", len(d.mappings)).
		Msg("sync cycle started")

	d.writeJournal(ctx, func(ctx context.Context) error {
		return d.deps.Journal.StartCycle(ctx, cycleID, startedAt)
	})

	cycleCtx := utils.WithCycleID(ctx, cycleID)
	for _, mapping := range d.mappings {
		d.wg.Add(1)
		go d.syncMapping(cycleCtx, mapping, log)
	}

	d.mu.Lock()
	if d.state == models.CycleRunning {
		d.state = models.CycleDraining
	}
	d.mu.Unlock()

	d.checkQuiescent()
	return nil
}

// Status implements CycleDriver.
func (d *cycleDriver) Status() models.DriverStatus {
	d.mu.Lock()
	defer d.mu.Unlock()

	status := models.DriverStatus{
		State:   d.state,
		CycleID: d.cycleID,
		Current: d.deps.Stats.Snapshot(),
	}
	if !d.startedAt.IsZero() {
		startedAt := d.startedAt
		status.StartedAt = &startedAt
		status.Current.CycleID = d.cycleID
		status.Current.StartedAt = startedAt
	}
	if !d.nextAt.IsZero() {
		nextAt := d.nextAt
		status.NextCycleAt = &nextAt
	}
	if d.last != nil {
		last := *d.last
		status.LastCycle = &last
	}

	return status
}

func (d *cycleDriver) syncMapping(ctx context.Context, mapping models.Mapping, log *logger.Logger) {
	defer d.wg.Done()
	defer d.reconciliationDone()

	mapping = mapping.Normalized()
	if err := d.deps.FS.MkdirAll(mapping.LocalPath, 0o755); err != nil {
		log.Error().
			Err(err).
			Str("func", "cycleDriver.syncMapping").
			Str("local_path", mapping.LocalPath).
			Msg("cannot create local directory, skipping mapping")
		return
	}

	folderID, err := d.deps.Resolver.Resolve(ctx, mapping.Segments())
	if err != nil {
		event := log.Error()
		if errors.Is(err, ErrFolderNotFound) {
			event = log.Warn()
		}
		event.Err(err).
			Str("func", "cycleDriver.syncMapping").
			Str("remote_path", mapping.RemotePath).
			Msg("cannot resolve remote path, skipping mapping")
		return
	}

	if err = d.deps.Reconciler.Reconcile(ctx, mapping, folderID, mapping.LocalPath, 0); err != nil {
		log.Warn().
			Err(err).
			Str("func", "cycleDriver.syncMapping").
			Str("remote_path", mapping.RemotePath).
			Msg("mapping reconciled with errors")
		return
	}

	log.Debug().
		Str("func", "cycleDriver.syncMapping").
		Str("remote_path", mapping.RemotePath).
		Int64("folder_id", folderID).
		Msg("mapping reconciled")
}

func (d *cycleDriver) reconciliationDone() {
	d.mu.Lock()
	d.pending--
	d.mu.Unlock()

	d.checkQuiescent()
}

// onEnqueue cancels an armed next-cycle timer: new work means the cycle is
// no longer idle.
func (d *cycleDriver) onEnqueue() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != models.CycleScheduled {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.nextAt = time.Time{}
	d.state = models.CycleDraining
}

// checkQuiescent finishes the cycle once nothing is pending: no mapping is
// being reconciled and the scheduler is drained.
func (d *cycleDriver) checkQuiescent() {
	d.mu.Lock()
	if d.state != models.CycleDraining || d.pending > 0 || !d.deps.Scheduler.Drained() {
		d.mu.Unlock()
		return
	}

	finishedAt := d.deps.Clock.Now()
	summary := d.deps.Stats.Snapshot()
	summary.CycleID = d.cycleID
	summary.StartedAt = d.startedAt
	summary.FinishedAt = &finishedAt
	summary.Enqueued = int64(d.deps.Scheduler.Snapshot().TotalEnqueued)
	d.last = &summary

	if d.safety != nil {
		d.safety.Stop()
		d.safety = nil
	}

	if d.wait > 0 {
		d.state = models.CycleScheduled
		d.nextAt = finishedAt.Add(d.wait)
		d.timer = d.deps.Clock.AfterFunc(d.wait, d.onTimer)
	} else {
		d.state = models.CycleStopped
	}
	state, nextAt, ctx := d.state, d.nextAt, d.runCtx
	d.mu.Unlock()

	duration := finishedAt.Sub(summary.StartedAt)
	d.deps.Metrics.CycleFinished(duration)

	event := d.logger.WithCycle(summary.CycleID).Info().
		Str("func", "cycleDriver.checkQuiescent").
		Dur("duration", duration).
		Int64("listed", summary.Listed).
		Int64("synced", summary.Synced).
		Int64("missing", summary.Missing).
		Int64("stale", summary.Stale).
		Int64("enqueued", summary.Enqueued).
		Int64("transferred", summary.Transferred).
		Int64("failed", summary.Failed).
		Int64("deleted_files", summary.DeletedFiles).
		Int64("deleted_folders", summary.DeletedFolders).
		Int64("bytes", summary.Bytes)
	if state == models.CycleScheduled {
		event = event.Time("next_cycle_at", nextAt)
	}
	event.Msg("sync cycle finished")

	if ctx == nil {
		ctx = context.Background()
	}
	d.writeJournal(ctx, func(ctx context.Context) error {
		return d.deps.Journal.FinishCycle(ctx, summary)
	})

	if state == models.CycleStopped {
		close(d.done)
	}
}

func (d *cycleDriver) onTimer() {
	d.mu.Lock()
	if d.state != models.CycleScheduled {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	ctx := d.runCtx
	d.mu.Unlock()

	if ctx == nil {
		ctx = context.Background()
	}
	if err := d.StartCycle(ctx); err != nil {
		d.logger.Warn().
			Err(err).
			Str("func", "cycleDriver.onTimer").
			Msg("cannot start scheduled cycle")
	}
}

// stop disarms the timers and moves the driver to Stopped.
func (d *cycleDriver) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopTimers()
	d.nextAt = time.Time{}
	d.state = models.CycleStopped
}

func (d *cycleDriver) stopTimers() {
	if d.safety != nil {
		d.safety.Stop()
		d.safety = nil
	}
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *cycleDriver) writeJournal(ctx context.Context, write func(ctx context.Context) error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), journalWriteTimeout)
	defer cancel()

	if err := write(ctx); err != nil {
		d.logger.Warn().
			Err(err).
			Str("func", "cycleDriver.writeJournal").
			Msg("cannot write cycle to journal")
	}
}
