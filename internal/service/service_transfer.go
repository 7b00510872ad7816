package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/MKhiriev/go-mirror-sync/internal/adapter"
	"github.com/MKhiriev/go-mirror-sync/internal/logger"
	"github.com/MKhiriev/go-mirror-sync/internal/utils"
	"github.com/MKhiriev/go-mirror-sync/models"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"
)

const (
	// TempDirName is the hidden directory under each mapping's local root
	// holding partially transferred files.
	TempDirName = ".mirror-sync"

	progressInterval = 200 * time.Millisecond
)

type transferService struct {
	adapter  adapter.RemoteAdapter
	fetcher  adapter.ContentFetcher
	fs       afero.Fs
	progress ProgressReporter
	clock    clockwork.Clock

	logger *logger.Logger
}

// NewTransferService creates a Transferer streaming content through fetcher
// into temp files on fsys.
func NewTransferService(
	remoteAdapter adapter.RemoteAdapter,
	fetcher adapter.ContentFetcher,
	fsys afero.Fs,
	progress ProgressReporter,
	clock clockwork.Clock,
	logger *logger.Logger,
) Transferer {
	return &transferService{
		adapter:  remoteAdapter,
		fetcher:  fetcher,
		fs:       fsys,
		progress: progress,
		clock:    clock,
		logger:   logger,
	}
}

// TempPath returns the temp file location of task. The name combines the
// remote file id with the target's base name.
func TempPath(task models.DownloadTask) string {
	name := strconv.FormatInt(task.Entry.ID, 10) + "-" + filepath.Base(task.TargetPath)
	return filepath.Join(task.Mapping.LocalPath, TempDirName, name)
}

// Transfer implements Transferer.
//
// Bytes already present in the task's temp file are kept and the transfer
// resumes from there with a ranged request; a temp file larger than the
// remote file is discarded. The finished temp file is renamed onto the
// target path only after its size matches the remote size. On failure the
// temp file stays in place for the next cycle.
func (t *transferService) Transfer(ctx context.Context, slot int, task models.DownloadTask) (models.TransferRecord, error) {
	cycleID, _ := utils.GetCycleIDFromContext(ctx)
	record := models.TransferRecord{
		CycleID:    cycleID,
		FileID:     task.Entry.ID,
		Name:       task.Entry.Name,
		TargetPath: task.TargetPath,
		Size:       task.Entry.Size,
		Status:     models.TransferStatusFailed,
	}

	state, err := t.prepare(task)
	if err == nil {
		record.ResumeOffset = state.ResumeOffset
		t.progress.TransferStarted(slot, task, state.ResumeOffset)
		err = t.transfer(ctx, slot, task, &state)
	}
	if err == nil {
		err = t.place(state.TempPath, task.TargetPath, state.ExpectedSize)
	}

	record.ResumeOffset = state.ResumeOffset
	record.FinishedAt = t.clock.Now()
	t.progress.TransferFinished(slot, task, err)
	if err != nil {
		record.Error = err.Error()
		return record, err
	}

	record.Status = models.TransferStatusOK
	return record, nil
}

// prepare computes the transfer state from the temp file left by earlier
// attempts.
func (t *transferService) prepare(task models.DownloadTask) (models.TransferState, error) {
	state := models.TransferState{
		TempPath:     TempPath(task),
		ExpectedSize: task.Entry.Size,
	}

	if err := t.fs.MkdirAll(filepath.Dir(state.TempPath), 0o755); err != nil {
		return state, fmt.Errorf("%w: create temp dir: %w", ErrLocalIO, err)
	}

	info, err := t.fs.Stat(state.TempPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return state, nil
	case err != nil:
		return state, fmt.Errorf("%w: stat temp file: %w", ErrLocalIO, err)
	}

	if info.Size() > state.ExpectedSize {
		t.logger.Info().
			Str("func", "transferService.prepare").
			Int64("file_id", task.Entry.ID).
			Int64("temp_size", info.Size()).
			Int64("remote_size", state.ExpectedSize).
			Msg("temp file larger than remote file, restarting")
		if err = t.fs.Remove(state.TempPath); err != nil {
			return state, fmt.Errorf("%w: remove oversized temp file: %w", ErrLocalIO, err)
		}
		return state, nil
	}

	state.ResumeOffset = info.Size()
	return state, nil
}

// transfer brings the temp file up to the expected size. A temp file that
// already has it, and a zero-length remote file, need no network round trip.
func (t *transferService) transfer(ctx context.Context, slot int, task models.DownloadTask, state *models.TransferState) error {
	if state.ResumeOffset == state.ExpectedSize {
		f, err := t.fs.OpenFile(state.TempPath, os.O_WRONLY|os.O_CREATE, 0o644)
		if err != nil {
			return fmt.Errorf("%w: open temp file: %w", ErrLocalIO, err)
		}
		return closeLocal(f)
	}

	location, err := t.adapter.ResolveDownloadLocation(ctx, task.Entry.ID)
	if err != nil {
		return fmt.Errorf("resolve download location: %w", err)
	}

	contentURL, err := t.fetcher.Locate(ctx, location)
	if err != nil {
		return fmt.Errorf("locate content: %w", err)
	}

	body, partial, err := t.fetcher.Fetch(ctx, contentURL, state.ResumeOffset)
	if err != nil {
		return fmt.Errorf("fetch content: %w", err)
	}
	defer body.Close()

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if state.ResumeOffset > 0 && partial {
		flags = os.O_WRONLY | os.O_APPEND
	} else if state.ResumeOffset > 0 {
		t.logger.Info().
			Str("func", "transferService.transfer").
			Int64("file_id", task.Entry.ID).
			Int64("offset", state.ResumeOffset).
			Msg("server ignored range request, restarting from zero")
		state.ResumeOffset = 0
	}

	f, err := t.fs.OpenFile(state.TempPath, flags, 0o644)
	if err != nil {
		return fmt.Errorf("%w: open temp file: %w", ErrLocalIO, err)
	}

	t.logger.Debug().
		Str("func", "transferService.transfer").
		Int64("file_id", task.Entry.ID).
		Int("slot", slot).
		Int64("offset", state.ResumeOffset).
		Int64("size", state.ExpectedSize).
		Msg("streaming content")

	pw := &progressWriter{
		w:        f,
		slot:     slot,
		written:  state.ResumeOffset,
		total:    state.ExpectedSize,
		reporter: t.progress,
		clock:    t.clock,
	}
	if _, err = io.Copy(pw, body); err != nil {
		_ = f.Close()
		if pw.writeErr != nil {
			return fmt.Errorf("%w: write temp file: %w", ErrLocalIO, err)
		}
		return fmt.Errorf("%w: stream content: %w", adapter.ErrTransport, err)
	}
	pw.report()

	return closeLocal(f)
}

// place verifies the temp file and renames it onto target.
func (t *transferService) place(tempPath, target string, expected int64) error {
	info, err := t.fs.Stat(tempPath)
	if err != nil {
		return fmt.Errorf("%w: stat temp file: %w", ErrLocalIO, err)
	}
	if info.Size() != expected {
		return fmt.Errorf("%w: have %d bytes, expected %d", ErrSizeMismatch, info.Size(), expected)
	}

	if err = t.fs.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("%w: create target dir: %w", ErrLocalIO, err)
	}
	if err = t.fs.Rename(tempPath, target); err != nil {
		return fmt.Errorf("%w: rename temp file: %w", ErrLocalIO, err)
	}

	return nil
}

func closeLocal(f afero.File) error {
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close temp file: %w", ErrLocalIO, err)
	}
	return nil
}

// progressWriter forwards writes to w and reports progress at most every
// progressInterval.
type progressWriter struct {
	w        io.Writer
	slot     int
	written  int64
	total    int64
	reporter ProgressReporter
	clock    clockwork.Clock
	last     time.Time
	writeErr error
}

func (p *progressWriter) Write(b []byte) (int, error) {
	n, err := p.w.Write(b)
	p.written += int64(n)
	if err != nil {
		p.writeErr = err
		return n, err
	}

	if now := p.clock.Now(); now.Sub(p.last) >= progressInterval {
		p.last = now
		p.report()
	}
	return n, nil
}

func (p *progressWriter) report() {
	p.reporter.TransferProgress(p.slot, p.written, p.total)
}
