package lockfile

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-mirror-sync/internal/logger"
)

func writeLockFile(t *testing.T, path string, content Content) {
	t.Helper()
	data, err := json.Marshal(content)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func hostname(t *testing.T) string {
	t.Helper()
	h, err := os.Hostname()
	require.NoError(t, err)
	return h
}

func TestAcquireAndRelease(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run", "mirror-sync.pid")

	lock, err := Acquire(path, false, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, path, lock.Path())

	content, err := readContent(path)
	require.NoError(t, err)
	assert.Equal(t, os.Getpid(), content.PID)
	assert.NotEmpty(t, content.Nonce)

	lock.Release()
	assert.NoFileExists(t, path)

	// second release is a no-op
	lock.Release()
}

func TestAcquire_HeldByLiveProcess(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mirror-sync.pid")
	writeLockFile(t, path, Content{PID: os.Getppid(), Hostname: hostname(t), StartedAt: time.Now(), Nonce: "other"})

	_, err := Acquire(path, false, logger.Nop())
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	content, err := readContent(path)
	require.NoError(t, err)
	assert.Equal(t, "other", content.Nonce)
}

func TestAcquire_HeldOnAnotherHost(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mirror-sync.pid")
	writeLockFile(t, path, Content{PID: math.MaxInt32, Hostname: "elsewhere", Nonce: "other"})

	_, err := Acquire(path, false, logger.Nop())
	assert.ErrorIs(t, err, ErrAlreadyRunning)
}

func TestAcquire_StaleProcessTakenOver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mirror-sync.pid")
	writeLockFile(t, path, Content{PID: math.MaxInt32, Hostname: hostname(t), Nonce: "dead"})

	lock, err := Acquire(path, false, logger.Nop())
	require.NoError(t, err)
	defer lock.Release()

	content, err := readContent(path)
	require.NoError(t, err)
	assert.Equal(t, os.Getpid(), content.PID)
	assert.NotEqual(t, "dead", content.Nonce)

	leftovers, err := filepath.Glob(path + ".*.tmp")
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestAcquire_CorruptFileTakenOver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mirror-sync.pid")
	require.NoError(t, os.WriteFile(path, []byte("12345\n"), 0o644))

	lock, err := Acquire(path, false, logger.Nop())
	require.NoError(t, err)
	lock.Release()
	assert.NoFileExists(t, path)
}

func TestAcquire_Override(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mirror-sync.pid")
	writeLockFile(t, path, Content{PID: os.Getppid(), Hostname: hostname(t), Nonce: "other"})

	lock, err := Acquire(path, true, logger.Nop())
	require.NoError(t, err)
	defer lock.Release()

	content, err := readContent(path)
	require.NoError(t, err)
	assert.Equal(t, os.Getpid(), content.PID)
}

func TestRelease_KeepsForeignLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mirror-sync.pid")

	lock, err := Acquire(path, false, logger.Nop())
	require.NoError(t, err)

	writeLockFile(t, path, Content{PID: os.Getppid(), Hostname: hostname(t), Nonce: "newer"})
	lock.Release()

	content, err := readContent(path)
	require.NoError(t, err)
	assert.Equal(t, "newer", content.Nonce)
}

func TestReadContent_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := readContent(filepath.Join(dir, "missing.pid"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	empty := filepath.Join(dir, "empty.pid")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	_, err = readContent(empty)
	assert.ErrorIs(t, err, ErrCorruptLockFile)

	zeroPID := filepath.Join(dir, "zero.pid")
	writeLockFile(t, zeroPID, Content{Hostname: "h"})
	_, err = readContent(zeroPID)
	assert.ErrorIs(t, err, ErrCorruptLockFile)
}

func TestProcessAlive(t *testing.T) {
	assert.True(t, processAlive(os.Getpid()))
	assert.False(t, processAlive(math.MaxInt32))
}
