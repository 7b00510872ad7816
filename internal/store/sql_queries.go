package store

const (
	tableCycles    = "sync_cycles"
	tableTransfers = "transfers"

	// upsertTransferSuffix keeps the latest outcome when a file is recorded
	// twice in one cycle. Both SQLite and PostgreSQL accept this form.
	upsertTransferSuffix = `ON CONFLICT (cycle_id, file_id) DO UPDATE SET
		name = excluded.name,
		target_path = excluded.target_path,
		size = excluded.size,
		resume_offset = excluded.resume_offset,
		status = excluded.status,
		error = excluded.error,
		finished_at = excluded.finished_at`
)

var transferColumns = []string{
	"cycle_id",
	"file_id",
	"name",
	"target_path",
	"size",
	"resume_offset",
	"status",
	"error",
	"finished_at",
}
