// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package lockfile keeps a single mirror-sync instance running per PID file.
//
// The PID file is created atomically with O_EXCL. A file left behind by a
// process that no longer exists is taken over by renaming fresh content
// over it, and the content is read back to detect a concurrent takeover.
package lockfile

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/MKhiriev/go-mirror-sync/internal/logger"
)

var (
	// ErrAlreadyRunning is returned when a live process holds the lock.
	ErrAlreadyRunning = errors.New("another instance is already running")
	// ErrLostRace is returned when a concurrent process won a stale lock takeover.
	ErrLostRace = errors.New("lost race during stale lock takeover")
	// ErrCorruptLockFile indicates an empty or unparsable PID file.
	ErrCorruptLockFile = errors.New("lock file is corrupt or empty")
)

// Content is the JSON document stored in the PID file.
type Content struct {
	PID       int       `json:"pid"`
	Hostname  string    `json:"hostname"`
	StartedAt time.Time `json:"started_at"`
	Nonce     string    `json:"nonce"`
}

// Lock is a held PID file.
type Lock struct {
	path    string
	content Content

	mu   sync.Mutex
	held bool

	logger *logger.Logger
}

const maxAttempts = 3

// Acquire takes the lock at path. With override set, an existing lock is
// replaced without checking its owner.
//
// Returns an error matching ErrAlreadyRunning while another live process on
// this host, or any process on another host, holds the lock.
func Acquire(path string, override bool, log *logger.Logger) (*Lock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		lock, err := tryCreate(path, log)
		if err == nil {
			return lock, nil
		}
		if !os.IsExist(err) {
			return nil, fmt.Errorf("create lock file: %w", err)
		}

		if !override {
			held, err := heldByOther(path)
			switch {
			case errors.Is(err, ErrCorruptLockFile):
				log.Warn().Err(err).Str("func", "lockfile.Acquire").Str("path", path).Msg("corrupt lock file, treating as stale")
			case errors.Is(err, os.ErrNotExist):
				// released between create and read
				continue
			case err != nil:
				return nil, fmt.Errorf("read lock file: %w", err)
			case held != nil:
				return nil, fmt.Errorf("%w: pid %d on %s since %s (lock file %s)",
					ErrAlreadyRunning, held.PID, held.Hostname, held.StartedAt.Format(time.RFC3339), path)
			default:
				log.Warn().Str("func", "lockfile.Acquire").Str("path", path).Msg("stale lock file, taking over")
			}
		} else {
			log.Warn().Str("func", "lockfile.Acquire").Str("path", path).Msg("override set, replacing existing lock")
		}

		lock, err = takeover(path, log)
		if err == nil {
			return lock, nil
		}
		lastErr = err
		log.Debug().Err(err).Str("func", "lockfile.Acquire").Msg("lock takeover failed, retrying")
	}

	return nil, fmt.Errorf("acquire lock after %d attempts: %w", maxAttempts, lastErr)
}

// Release removes the PID file if it still belongs to this lock. It is safe
// to call more than once.
func (l *Lock) Release() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.held {
		return
	}
	l.held = false

	current, err := readContent(l.path)
	if err == nil && current.Nonce != l.content.Nonce {
		l.logger.Warn().Str("func", "Lock.Release").Int("owner_pid", current.PID).Msg("lock file taken over, leaving it in place")
		return
	}

	if err = os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		l.logger.Warn().Err(err).Str("func", "Lock.Release").Str("path", l.path).Msg("cannot remove lock file")
		return
	}
	l.logger.Debug().Str("func", "Lock.Release").Str("path", l.path).Msg("lock released")
}

// Path returns the PID file location.
func (l *Lock) Path() string {
	return l.path
}

func tryCreate(path string, log *logger.Logger) (*Lock, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	content, err := newContent()
	if err != nil {
		_ = os.Remove(path)
		return nil, err
	}
	if err = writeContent(f, content); err != nil {
		_ = os.Remove(path)
		return nil, err
	}

	return &Lock{path: path, content: content, held: true, logger: log}, nil
}

// takeover atomically replaces the PID file and verifies the result.
func takeover(path string, log *logger.Logger) (*Lock, error) {
	content, err := newContent()
	if err != nil {
		return nil, err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return nil, fmt.Errorf("create temp lock file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err = writeContent(tmp, content); err != nil {
		_ = tmp.Close()
		return nil, err
	}
	if err = tmp.Close(); err != nil {
		return nil, fmt.Errorf("close temp lock file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return nil, fmt.Errorf("replace lock file: %w", err)
	}

	readback, err := readContent(path)
	if err != nil {
		return nil, fmt.Errorf("read back lock file: %w", err)
	}
	if readback.Nonce != content.Nonce {
		return nil, ErrLostRace
	}

	return &Lock{path: path, content: content, held: true, logger: log}, nil
}

// heldByOther returns the owner of the lock when it is still alive.
func heldByOther(path string) (*Content, error) {
	content, err := readContent(path)
	if err != nil {
		return nil, err
	}

	hostname, _ := os.Hostname()
	if content.Hostname != hostname {
		// liveness cannot be checked across hosts
		return &content, nil
	}
	if content.PID == os.Getpid() || !processAlive(content.PID) {
		return nil, nil
	}

	return &content, nil
}

func newContent() (Content, error) {
	nonce := make([]byte, 16)
	if _, err := rand.Read(nonce); err != nil {
		return Content{}, fmt.Errorf("generate nonce: %w", err)
	}
	hostname, err := os.Hostname()
	if err != nil {
		return Content{}, fmt.Errorf("read hostname: %w", err)
	}

	return Content{
		PID:       os.Getpid(),
		Hostname:  hostname,
		StartedAt: time.Now().UTC(),
		Nonce:     hex.EncodeToString(nonce),
	}, nil
}

func writeContent(w io.Writer, content Content) error {
	data, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("marshal lock content: %w", err)
	}
	if _, err = w.Write(data); err != nil {
		return fmt.Errorf("write lock content: %w", err)
	}
	return nil
}

func readContent(path string) (Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Content{}, err
	}
	if len(data) == 0 {
		return Content{}, fmt.Errorf("%w: empty file", ErrCorruptLockFile)
	}

	var content Content
	if err = json.Unmarshal(data, &content); err != nil {
		return Content{}, fmt.Errorf("%w: %w", ErrCorruptLockFile, err)
	}
	if content.PID <= 0 {
		return Content{}, fmt.Errorf("%w: invalid pid %d", ErrCorruptLockFile, content.PID)
	}

	return content, nil
}
