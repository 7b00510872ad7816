// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// TransferStatus is the terminal outcome of one transfer.
type TransferStatus string

const (
	TransferStatusOK     TransferStatus = "ok"
	TransferStatusFailed TransferStatus = "failed"
)

// TransferRecord is the journal entry written for every finished transfer.
type TransferRecord struct {
	CycleID      string         `json:"cycle_id"`
	FileID       int64          `json:"file_id"`
	Name         string         `json:"name"`
	TargetPath   string         `json:"target_path"`
	Size         int64          `json:"size"`
	ResumeOffset int64          `json:"resume_offset"`
	Status       TransferStatus `json:"status"`
	Error        string         `json:"error,omitempty"`
	FinishedAt   time.Time      `json:"finished_at"`
}

// SlotState describes what a scheduler slot is currently doing.
type SlotState struct {
	Slot     int    `json:"slot"`
	Busy     bool   `json:"busy"`
	FileID   int64  `json:"file_id,omitempty"`
	Name     string `json:"name,omitempty"`
	Sequence int    `json:"sequence,omitempty"`
}

// SchedulerSnapshot is a point-in-time view of the download scheduler.
type SchedulerSnapshot struct {
	Queued         int         `json:"queued"`
	Active         int         `json:"active"`
	MaxConcurrency int         `json:"max_concurrency"`
	TotalEnqueued  int         `json:"total_enqueued"`
	Slots          []SlotState `json:"slots"`
}
