package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-mirror-sync/internal/logger"
	"github.com/MKhiriev/go-mirror-sync/internal/store"
	"github.com/MKhiriev/go-mirror-sync/models"
)

const journalWriteTimeout = 5 * time.Second

type completionService struct {
	deletion DeletionPolicy
	journal  store.Journal
	stats    *models.CycleStats
	metrics  MetricsRecorder

	logger *logger.Logger
}

// NewCompletionService creates the CompletionHandler that accounts for
// finished transfers and applies the delete-after-sync policy to verified
// ones.
func NewCompletionService(deletion DeletionPolicy, journal store.Journal, stats *models.CycleStats, metrics MetricsRecorder, logger *logger.Logger) CompletionHandler {
	return &completionService{
		deletion: deletion,
		journal:  journal,
		stats:    stats,
		metrics:  metrics,
		logger:   logger,
	}
}

// OnTransferComplete implements CompletionHandler.
func (c *completionService) OnTransferComplete(ctx context.Context, task models.DownloadTask, record models.TransferRecord, err error) {
	c.recordJournal(ctx, record)

	if err != nil {
		c.stats.Failed.Add(1)
		c.metrics.TransferFinished(models.TransferStatusFailed, 0)
		c.logger.Error().
			Err(err).
			Str("func", "completionService.OnTransferComplete").
			Str("cycle_id", record.CycleID).
			Int64("file_id", task.Entry.ID).
			Str("target", task.TargetPath).
			Int("sequence", task.Sequence).
			Msg("transfer failed, left for next cycle")
		return
	}

	transferred := record.Size - record.ResumeOffset
	c.stats.Transferred.Add(1)
	c.stats.Bytes.Add(transferred)
	c.metrics.TransferFinished(models.TransferStatusOK, transferred)
	c.logger.Info().
		Str("func", "completionService.OnTransferComplete").
		Str("cycle_id", record.CycleID).
		Int64("file_id", task.Entry.ID).
		Str("target", task.TargetPath).
		Int64("size", record.Size).
		Int64("resumed_at", record.ResumeOffset).
		Int("sequence", task.Sequence).
		Msg("transfer complete")

	c.deletion.MaybeDeleteFile(ctx, task.Mapping, task.Entry)
}

func (c *completionService) recordJournal(ctx context.Context, record models.TransferRecord) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), journalWriteTimeout)
	defer cancel()

	if err := c.journal.RecordTransfer(ctx, record); err != nil {
		c.logger.Warn().
			Err(err).
			Str("func", "completionService.recordJournal").
			Int64("file_id", record.FileID).
			Msg("cannot write transfer to journal")
	}
}
