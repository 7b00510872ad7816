package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-mirror-sync/internal/adapter"
	"github.com/MKhiriev/go-mirror-sync/internal/logger"
	"github.com/MKhiriev/go-mirror-sync/models"
)

const (
	deletedKindFile   = "file"
	deletedKindFolder = "folder"
)

type deletionService struct {
	adapter adapter.RemoteAdapter
	stats   *models.CycleStats
	metrics MetricsRecorder

	logger *logger.Logger
}

// NewDeletionService creates the DeletionPolicy backed by remoteAdapter.
func NewDeletionService(remoteAdapter adapter.RemoteAdapter, stats *models.CycleStats, metrics MetricsRecorder, logger *logger.Logger) DeletionPolicy {
	return &deletionService{adapter: remoteAdapter, stats: stats, metrics: metrics, logger: logger}
}

// MaybeDeleteFile implements DeletionPolicy. It deletes the remote file when
// the mapping has delete-after-sync enabled.
func (d *deletionService) MaybeDeleteFile(ctx context.Context, mapping models.Mapping, entry models.RemoteEntry) {
	if !mapping.DeleteAfterSync {
		return
	}

	if !d.delete(ctx, entry.ID, deletedKindFile, entry.Name) {
		return
	}
	d.stats.DeletedFiles.Add(1)
}

// MaybeDeleteFolder implements DeletionPolicy. It deletes the remote folder
// when the mapping has empty-subfolder deletion enabled.
func (d *deletionService) MaybeDeleteFolder(ctx context.Context, mapping models.Mapping, folderID int64) {
	if !mapping.DeleteEmptySubfolders {
		return
	}

	if !d.delete(ctx, folderID, deletedKindFolder, "") {
		return
	}
	d.stats.DeletedFolders.Add(1)
}

func (d *deletionService) delete(ctx context.Context, id int64, kind, name string) bool {
	err := d.adapter.Delete(ctx, id)
	switch {
	case err == nil:
		d.metrics.RemoteDeleted(kind)
		d.logger.Info().
			Str("func", "deletionService.delete").
			Str("kind", kind).
			Int64("id", id).
			Str("name", name).
			Msg("remote entry deleted")
		return true
	case errors.Is(err, adapter.ErrNotFound):
		d.logger.Info().
			Str("func", "deletionService.delete").
			Str("kind", kind).
			Int64("id", id).
			Msg("remote entry already deleted")
	default:
		d.logger.Warn().
			Err(err).
			Str("func", "deletionService.delete").
			Str("kind", kind).
			Int64("id", id).
			Str("name", name).
			Msg("remote delete failed")
	}

	return false
}
