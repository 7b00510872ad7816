// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"sync"

	"github.com/MKhiriev/go-mirror-sync/models"
)

const recentLimit = 5

// slotProgress is the state of one scheduler slot as seen by the view.
type slotProgress struct {
	busy    bool
	fileID  int64
	name    string
	offset  int64
	written int64
	total   int64
}

// percent is the completed fraction in [0, 1].
func (s slotProgress) percent() float64 {
	if s.total <= 0 {
		return 1
	}
	p := float64(s.written) / float64(s.total)
	if p > 1 {
		return 1
	}
	return p
}

type finishedTransfer struct {
	name string
	size int64
	err  error
}

// Progress collects transfer progress reported by the sync engine. Its
// methods never block, so transfers do not depend on the view running.
type Progress struct {
	mu     sync.Mutex
	slots  []slotProgress
	recent []finishedTransfer
}

func NewProgress(parallel int) *Progress {
	if parallel < 1 {
		parallel = 1
	}
	return &Progress{slots: make([]slotProgress, parallel)}
}

func (p *Progress) TransferStarted(slot int, task models.DownloadTask, offset int64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.grow(slot)
	p.slots[slot] = slotProgress{
		busy:    true,
		fileID:  task.Entry.ID,
		name:    task.Entry.Name,
		offset:  offset,
		written: offset,
		total:   task.Entry.Size,
	}
}

func (p *Progress) TransferProgress(slot int, written, total int64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.grow(slot)
	p.slots[slot].written = written
	p.slots[slot].total = total
}

func (p *Progress) TransferFinished(slot int, task models.DownloadTask, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.grow(slot)
	p.slots[slot] = slotProgress{}

	p.recent = append(p.recent, finishedTransfer{name: task.Entry.Name, size: task.Entry.Size, err: err})
	if len(p.recent) > recentLimit {
		p.recent = p.recent[len(p.recent)-recentLimit:]
	}
}

// snapshot copies the current state for rendering. Recent transfers are
// returned newest first.
func (p *Progress) snapshot() ([]slotProgress, []finishedTransfer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	slots := make([]slotProgress, len(p.slots))
	copy(slots, p.slots)

	recent := make([]finishedTransfer, 0, len(p.recent))
	for i := len(p.recent) - 1; i >= 0; i-- {
		recent = append(recent, p.recent[i])
	}

	return slots, recent
}

func (p *Progress) grow(slot int) {
	for len(p.slots) <= slot {
		p.slots = append(p.slots, slotProgress{})
	}
}
