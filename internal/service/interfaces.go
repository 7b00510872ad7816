package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-mirror-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Resolver maps remote path segments to a remote folder id.
type Resolver interface {
	Resolve(ctx context.Context, segments []string) (int64, error)
}

// Reconciler compares one remote folder against its local mirror directory,
// enqueuing download tasks and issuing remote deletes as it goes.
type Reconciler interface {
	Reconcile(ctx context.Context, mapping models.Mapping, folderID int64, localDir string, depth int) error
}

// Enqueuer accepts download tasks.
type Enqueuer interface {
	Enqueue(ctx context.Context, task models.DownloadTask)
}

// Scheduler is a bounded-concurrency download queue.
type Scheduler interface {
	Enqueuer

	// Drained reports whether no task is queued, running or completing.
	Drained() bool
	// Reset clears the per-cycle counters.
	Reset()
	// Snapshot returns the queue and per-slot state.
	Snapshot() models.SchedulerSnapshot
	// SetHooks registers the callbacks of the cycle driver.
	SetHooks(hooks SchedulerHooks)
	// Wait blocks until every dispatched transfer and completion hook returned.
	Wait()
}

// Transferer performs one resumable file transfer in the given slot.
type Transferer interface {
	Transfer(ctx context.Context, slot int, task models.DownloadTask) (models.TransferRecord, error)
}

// CompletionHandler is invoked by the scheduler once per dispatched task,
// after the task's slot has been released.
type CompletionHandler interface {
	OnTransferComplete(ctx context.Context, task models.DownloadTask, record models.TransferRecord, err error)
}

// DeletionPolicy issues optional remote deletes. Failures are logged only.
type DeletionPolicy interface {
	MaybeDeleteFile(ctx context.Context, mapping models.Mapping, entry models.RemoteEntry)
	MaybeDeleteFolder(ctx context.Context, mapping models.Mapping, folderID int64)
}

// CycleDriver runs sync cycles until the last one finishes or ctx ends.
type CycleDriver interface {
	Run(ctx context.Context) error
	StartCycle(ctx context.Context) error
	Status() models.DriverStatus
}

// ProgressReporter receives live transfer progress per scheduler slot.
type ProgressReporter interface {
	TransferStarted(slot int, task models.DownloadTask, offset int64)
	TransferProgress(slot int, written, total int64)
	TransferFinished(slot int, task models.DownloadTask, err error)
}

// MetricsRecorder receives engine measurements.
type MetricsRecorder interface {
	EntryClassified(class models.Classification)
	TransferFinished(status models.TransferStatus, bytes int64)
	RemoteDeleted(kind string)
	SchedulerChanged(active, queued int)
	CycleFinished(duration time.Duration)
}

// IDGenerator produces unique cycle identifiers.
type IDGenerator interface {
	Generate() string
}

// StatusService assembles the status report served by the status API.
type StatusService interface {
	Status(ctx context.Context) models.StatusReport
	// Healthy reports false once the driver has stopped.
	Healthy(ctx context.Context) bool
}
