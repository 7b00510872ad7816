package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-mirror-sync/internal/logger"
	"github.com/MKhiriev/go-mirror-sync/models"
)

// sqlJournal is the database/sql implementation of [Journal]. Queries are
// built with squirrel so the same code serves SQLite and PostgreSQL.
type sqlJournal struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLJournal constructs a [Journal] backed by db. The schema must have
// been migrated with [DB.Migrate].
func NewSQLJournal(db *DB, logger *logger.Logger) Journal {
	return &sqlJournal{db: db, logger: logger}
}

// StartCycle implements [Journal].
func (j *sqlJournal) StartCycle(ctx context.Context, cycleID string, startedAt time.Time) error {
	query, args, err := j.db.builder().
		Insert(tableCycles).
		Columns("cycle_id", "started_at").
		Values(cycleID, startedAt.UTC()).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return j.exec(ctx, "sqlJournal.StartCycle", query, args...)
}

// FinishCycle implements [Journal].
func (j *sqlJournal) FinishCycle(ctx context.Context, summary models.CycleSummary) error {
	finishedAt := time.Now().UTC()
	if summary.FinishedAt != nil {
		finishedAt = summary.FinishedAt.UTC()
	}

	query, args, err := j.db.builder().
		Update(tableCycles).
		SetMap(map[string]any{
			"finished_at":     finishedAt,
			"listed":          summary.Listed,
			"synced":          summary.Synced,
			"missing":         summary.Missing,
			"stale":           summary.Stale,
			"enqueued":        summary.Enqueued,
			"transferred":     summary.Transferred,
			"failed":          summary.Failed,
			"deleted_files":   summary.DeletedFiles,
			"deleted_folders": summary.DeletedFolders,
			"bytes":           summary.Bytes,
		}).
		Where(sq.Eq{"cycle_id": summary.CycleID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return j.exec(ctx, "sqlJournal.FinishCycle", query, args...)
}

// RecordTransfer implements [Journal].
func (j *sqlJournal) RecordTransfer(ctx context.Context, record models.TransferRecord) error {
	query, args, err := j.db.builder().
		Insert(tableTransfers).
		Columns(transferColumns...).
		Values(
			record.CycleID,
			record.FileID,
			record.Name,
			record.TargetPath,
			record.Size,
			record.ResumeOffset,
			string(record.Status),
			record.Error,
			record.FinishedAt.UTC(),
		).
		Suffix(upsertTransferSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return j.exec(ctx, "sqlJournal.RecordTransfer", query, args...)
}

// RecentTransfers implements [Journal].
func (j *sqlJournal) RecentTransfers(ctx context.Context, limit uint64) ([]models.TransferRecord, error) {
	query, args, err := j.db.builder().
		Select(transferColumns...).
		From(tableTransfers).
		OrderBy("finished_at DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		j.logger.Err(err).Str("func", "sqlJournal.RecentTransfers").Msg("failed to query transfers")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.TransferRecord, 0, limit)
	for rows.Next() {
		var (
			record models.TransferRecord
			status string
		)
		if err = rows.Scan(
			&record.CycleID,
			&record.FileID,
			&record.Name,
			&record.TargetPath,
			&record.Size,
			&record.ResumeOffset,
			&status,
			&record.Error,
			&record.FinishedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		record.Status = models.TransferStatus(status)
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

// Close implements [Journal].
func (j *sqlJournal) Close() error {
	return j.db.Close()
}

// exec runs a write statement, retrying once when the database reports a
// transient failure.
func (j *sqlJournal) exec(ctx context.Context, caller, query string, args ...any) error {
	_, err := j.db.ExecContext(ctx, query, args...)
	if err != nil && j.db.errorClassificator != nil && j.db.errorClassificator.Classify(err) == Retryable {
		j.logger.Debug().Err(err).Str("func", caller).Msg("retrying transient journal error")
		_, err = j.db.ExecContext(ctx, query, args...)
	}
	if err != nil {
		j.logger.Err(err).Str("func", caller).Msg("failed to execute journal statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// nopJournal is used when no journal DSN is configured.
type nopJournal struct{}

// NewNopJournal returns a [Journal] that stores nothing.
func NewNopJournal() Journal {
	return nopJournal{}
}

func (nopJournal) StartCycle(context.Context, string, time.Time) error         { return nil }
func (nopJournal) FinishCycle(context.Context, models.CycleSummary) error      { return nil }
func (nopJournal) RecordTransfer(context.Context, models.TransferRecord) error { return nil }
func (nopJournal) Close() error                                                { return nil }

func (nopJournal) RecentTransfers(context.Context, uint64) ([]models.TransferRecord, error) {
	return nil, nil
}
