package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-mirror-sync/internal/config"
	"github.com/MKhiriev/go-mirror-sync/internal/logger"
)

const sqliteScheme = "sqlite://"

// NewJournal connects the journal backend selected by cfg.JournalDSN and
// migrates its schema. A "postgres://" or "postgresql://" DSN selects
// PostgreSQL. A "sqlite://" DSN or a bare path is a SQLite file. Any other
// scheme is rejected with [ErrUnsupportedDSN]. An empty DSN disables the
// journal.
func NewJournal(ctx context.Context, cfg config.Storage, log *logger.Logger) (Journal, error) {
	dsn := strings.TrimSpace(cfg.JournalDSN)
	if dsn == "" {
		log.Debug().Str("func", "NewJournal").Msg("journal disabled")
		return NewNopJournal(), nil
	}

	var (
		db  *DB
		err error
	)
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		db, err = NewConnectPostgres(ctx, dsn, log)
	case strings.HasPrefix(dsn, sqliteScheme):
		db, err = NewConnectSQLite(ctx, strings.TrimPrefix(dsn, sqliteScheme), log)
	case strings.Contains(dsn, "://"):
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
	default:
		db, err = NewConnectSQLite(ctx, dsn, log)
	}
	if err != nil {
		return nil, fmt.Errorf("connect journal: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate journal: %w", err)
	}

	return NewSQLJournal(db, log), nil
}
