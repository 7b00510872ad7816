package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/MKhiriev/go-mirror-sync/internal/adapter"
	"github.com/MKhiriev/go-mirror-sync/internal/logger"
	"github.com/MKhiriev/go-mirror-sync/models"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// DefaultRecursionLimit bounds how many subfolders of one folder are
// reconciled concurrently.
const DefaultRecursionLimit = 4

type reconcilerService struct {
	adapter   adapter.RemoteAdapter
	fs        afero.Fs
	scheduler Enqueuer
	deletion  DeletionPolicy
	stats     *models.CycleStats
	metrics   MetricsRecorder

	recursionLimit int

	logger *logger.Logger
}

// NewReconcilerService creates a Reconciler that lists remote folders with
// remoteAdapter, stats local files on fsys and hands download tasks to
// scheduler. recursionLimit caps concurrent subfolder reconciliations per
// folder; values below 1 use DefaultRecursionLimit.
func NewReconcilerService(
	remoteAdapter adapter.RemoteAdapter,
	fsys afero.Fs,
	scheduler Enqueuer,
	deletion DeletionPolicy,
	stats *models.CycleStats,
	metrics MetricsRecorder,
	recursionLimit int,
	logger *logger.Logger,
) Reconciler {
	if recursionLimit < 1 {
		recursionLimit = DefaultRecursionLimit
	}

	return &reconcilerService{
		adapter:        remoteAdapter,
		fs:             fsys,
		scheduler:      scheduler,
		deletion:       deletion,
		stats:          stats,
		metrics:        metrics,
		recursionLimit: recursionLimit,
		logger:         logger,
	}
}

// Reconcile implements Reconciler.
//
// Children are classified in listing order. Subfolders of a recursive
// mapping are reconciled concurrently; a failing subtree is logged and
// reported in the returned error without stopping its siblings.
func (r *reconcilerService) Reconcile(ctx context.Context, mapping models.Mapping, folderID int64, localDir string, depth int) error {
	listing, err := r.adapter.ListFolder(ctx, folderID)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("func", "reconcilerService.Reconcile").
			Int64("folder_id", folderID).
			Str("local_dir", localDir).
			Msg("listing failed, skipping subtree")
		return fmt.Errorf("list folder %d: %w", folderID, err)
	}
	r.stats.Listed.Add(int64(len(listing.Children)))

	if mapping.DeleteEmptySubfolders && depth > 0 && len(listing.Children) == 0 {
		r.deletion.MaybeDeleteFolder(ctx, mapping, folderID)
		return nil
	}

	var g errgroup.Group
	g.SetLimit(r.recursionLimit)

	seen := make(map[string]int64, len(listing.Children))
	for _, child := range listing.Children {
		name := SanitizeName(child.Name)
		if firstID, dup := seen[name]; dup {
			r.logger.Warn().
				Str("func", "reconcilerService.Reconcile").
				Int64("file_id", child.ID).
				Int64("kept_id", firstID).
				Str("name", child.Name).
				Str("local_name", name).
				Msg("sanitized name collides with an earlier entry, skipping")
			continue
		}
		seen[name] = child.ID
		if depth == 0 && name == TempDirName {
			r.logger.Warn().
				Str("func", "reconcilerService.Reconcile").
				Int64("file_id", child.ID).
				Str("name", child.Name).
				Msg("entry name is reserved for partial downloads, skipping")
			r.metrics.EntryClassified(models.ClassIgnored)
			continue
		}
		localPath := filepath.Join(localDir, name)

		if child.IsDir() {
			if !mapping.Recursive {
				r.metrics.EntryClassified(models.ClassIgnored)
				continue
			}

			r.metrics.EntryClassified(models.ClassRecurse)
			g.Go(func() error {
				return r.Reconcile(ctx, mapping, child.ID, localPath, depth+1)
			})
			continue
		}

		r.reconcileFile(ctx, mapping, child, localPath)
	}

	return g.Wait()
}

func (r *reconcilerService) reconcileFile(ctx context.Context, mapping models.Mapping, entry models.RemoteEntry, localPath string) {
	class, err := r.classify(entry, localPath)
	if err != nil {
		r.logger.Warn().
			Err(err).
			Str("func", "reconcilerService.reconcileFile").
			Int64("file_id", entry.ID).
			Str("path", localPath).
			Msg("cannot stat local file, skipping")
		return
	}

	r.stats.Record(class)
	r.metrics.EntryClassified(class)
	r.logger.Debug().
		Str("func", "reconcilerService.reconcileFile").
		Int64("file_id", entry.ID).
		Str("path", localPath).
		Stringer("class", class).
		Msg("file classified")

	if class == models.ClassSynced {
		r.deletion.MaybeDeleteFile(ctx, mapping, entry)
		return
	}

	r.scheduler.Enqueue(ctx, models.DownloadTask{
		Mapping:    mapping,
		Entry:      entry,
		TargetPath: localPath,
		Class:      class,
	})
}

func (r *reconcilerService) classify(entry models.RemoteEntry, localPath string) (models.Classification, error) {
	info, err := r.fs.Stat(localPath)
	if errors.Is(err, fs.ErrNotExist) {
		return models.ClassMissing, nil
	}
	if err != nil {
		return models.ClassIgnored, err
	}
	if info.IsDir() {
		return models.ClassIgnored, fmt.Errorf("%w: %s is a directory", ErrLocalIO, localPath)
	}
	if info.Size() == entry.Size {
		return models.ClassSynced, nil
	}

	return models.ClassStale, nil
}
