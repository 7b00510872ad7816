package service_test

import (
	"context"
	"strconv"
	"sync"

	"github.com/MKhiriev/go-mirror-sync/internal/service"
	"github.com/MKhiriev/go-mirror-sync/models"
)

const movieType = "video/x-matroska"

func dir(id int64, name string) models.RemoteEntry {
	return models.RemoteEntry{ID: id, Name: name, ContentType: models.DirectoryContentType}
}

func file(id int64, name string, size int64) models.RemoteEntry {
	return models.RemoteEntry{ID: id, Name: name, ContentType: movieType, Size: size}
}

func listing(children ...models.RemoteEntry) models.FolderListing {
	return models.FolderListing{Children: children}
}

// recordingEnqueuer collects enqueued tasks.
type recordingEnqueuer struct {
	mu    sync.Mutex
	tasks []models.DownloadTask
}

func (e *recordingEnqueuer) Enqueue(_ context.Context, task models.DownloadTask) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tasks = append(e.tasks, task)
}

func (e *recordingEnqueuer) Tasks() []models.DownloadTask {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]models.DownloadTask(nil), e.tasks...)
}

// transferFunc adapts a function to service.Transferer.
type transferFunc func(ctx context.Context, slot int, task models.DownloadTask) (models.TransferRecord, error)

func (f transferFunc) Transfer(ctx context.Context, slot int, task models.DownloadTask) (models.TransferRecord, error) {
	return f(ctx, slot, task)
}

// completionFunc adapts a function to service.CompletionHandler.
type completionFunc func(ctx context.Context, task models.DownloadTask, record models.TransferRecord, err error)

func (f completionFunc) OnTransferComplete(ctx context.Context, task models.DownloadTask, record models.TransferRecord, err error) {
	f(ctx, task, record, err)
}

var noCompletion = completionFunc(func(context.Context, models.DownloadTask, models.TransferRecord, error) {})

// sequenceIDs hands out cycle-1, cycle-2, ...
type sequenceIDs struct {
	mu sync.Mutex
	n  int
}

func (s *sequenceIDs) Generate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return "cycle-" + strconv.Itoa(s.n)
}

var _ service.IDGenerator = (*sequenceIDs)(nil)
