package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-mirror-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/journal_mock.go -package=mock

// Journal persists the history of sync cycles and finished transfers.
type Journal interface {
	// StartCycle records the start of a sync cycle.
	StartCycle(ctx context.Context, cycleID string, startedAt time.Time) error
	// FinishCycle stores the final counters of a sync cycle.
	FinishCycle(ctx context.Context, summary models.CycleSummary) error
	// RecordTransfer stores the outcome of one transfer. Recording the same
	// file twice within a cycle keeps the latest outcome.
	RecordTransfer(ctx context.Context, record models.TransferRecord) error
	// RecentTransfers returns up to limit transfers, newest first.
	RecentTransfers(ctx context.Context, limit uint64) ([]models.TransferRecord, error)
	// Close releases the underlying connection.
	Close() error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
