// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"sync/atomic"
	"time"
)

// CycleStats accumulates counters for one sync cycle. All counters are safe
// for concurrent use by reconciliation branches and transfer workers.
type CycleStats struct {
	Listed         atomic.Int64
	Synced         atomic.Int64
	Missing        atomic.Int64
	Stale          atomic.Int64
	Transferred    atomic.Int64
	Failed         atomic.Int64
	DeletedFiles   atomic.Int64
	DeletedFolders atomic.Int64
	Bytes          atomic.Int64
}

// Record increments the counter matching class.
func (s *CycleStats) Record(class Classification) {
	switch class {
	case ClassSynced:
		s.Synced.Add(1)
	case ClassStale:
		s.Stale.Add(1)
	case ClassMissing:
		s.Missing.Add(1)
	}
}

// Reset zeroes every counter. It is called when a new cycle starts.
func (s *CycleStats) Reset() {
	for _, c := range []*atomic.Int64{
		&s.Listed, &s.Synced, &s.Missing, &s.Stale, &s.Transferred,
		&s.Failed, &s.DeletedFiles, &s.DeletedFolders, &s.Bytes,
	} {
		c.Store(0)
	}
}

// Snapshot returns a plain copy of the counters.
func (s *CycleStats) Snapshot() CycleSummary {
	return CycleSummary{
		Listed:         s.Listed.Load(),
		Synced:         s.Synced.Load(),
		Missing:        s.Missing.Load(),
		Stale:          s.Stale.Load(),
		Transferred:    s.Transferred.Load(),
		Failed:         s.Failed.Load(),
		DeletedFiles:   s.DeletedFiles.Load(),
		DeletedFolders: s.DeletedFolders.Load(),
		Bytes:          s.Bytes.Load(),
	}
}

// CycleSummary is an immutable view of one cycle, exposed via the status API
// and persisted in the journal.
type CycleSummary struct {
	CycleID        string     `json:"cycle_id"`
	StartedAt      time.Time  `json:"started_at"`
	FinishedAt     *time.Time `json:"finished_at,omitempty"`
	Listed         int64      `json:"listed"`
	Synced         int64      `json:"synced"`
	Missing        int64      `json:"missing"`
	Stale          int64      `json:"stale"`
	Enqueued       int64      `json:"enqueued"`
	Transferred    int64      `json:"transferred"`
	Failed         int64      `json:"failed"`
	DeletedFiles   int64      `json:"deleted_files"`
	DeletedFolders int64      `json:"deleted_folders"`
	Bytes          int64      `json:"bytes"`
}
