// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Classification is the outcome of reconciling one remote entry against
// the local mirror.
type Classification int

const (
	// ClassIgnored marks a folder skipped because the mapping is not recursive.
	ClassIgnored Classification = iota
	// ClassSynced marks a file whose local copy exists with the remote size.
	ClassSynced
	// ClassStale marks a file whose local copy exists with a different size.
	ClassStale
	// ClassMissing marks a file with no local copy.
	ClassMissing
	// ClassRecurse marks a folder that is reconciled recursively.
	ClassRecurse
)

// String implements fmt.Stringer.
func (c Classification) String() string {
	switch c {
	case ClassSynced:
		return "synced"
	case ClassStale:
		return "stale"
	case ClassMissing:
		return "missing"
	case ClassRecurse:
		return "recurse"
	default:
		return "ignored"
	}
}

// NeedsDownload reports whether the classification results in a Download Task.
func (c Classification) NeedsDownload() bool {
	return c == ClassMissing || c == ClassStale
}

// DownloadTask is one unit of work for the download scheduler. It is created
// by the reconciler for missing or stale files and discarded once the
// transfer completes or fails.
type DownloadTask struct {
	// Mapping is the mapping the file belongs to.
	Mapping Mapping
	// Entry is the remote file to download.
	Entry RemoteEntry
	// TargetPath is the final local path of the file.
	TargetPath string
	// Class is the reconciliation outcome that produced the task.
	Class Classification
	// Sequence is assigned by the scheduler on enqueue, starting at 1 per cycle.
	Sequence int
}

// TransferState describes the on-disk state of one task's transfer.
type TransferState struct {
	// TempPath is where bytes are streamed before the final rename.
	TempPath string
	// ResumeOffset is the number of bytes already present in TempPath.
	ResumeOffset int64
	// ExpectedSize is the remote-reported size of the file.
	ExpectedSize int64
}
