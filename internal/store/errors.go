package store

import "errors"

// Low-level database operation errors. These are returned (or wrapped) by
// journal methods when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or UPDATE
	// statement fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan journal rows")

	// ErrUnsupportedDSN is returned when the journal DSN names no known
	// backend.
	ErrUnsupportedDSN = errors.New("unsupported journal dsn")
)
