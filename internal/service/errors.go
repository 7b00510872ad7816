package service

import "errors"

var (
	// ErrFolderNotFound is returned when a remote path segment is absent.
	ErrFolderNotFound = errors.New("remote folder not found")

	// ErrSizeMismatch is returned when a finished temp file does not have
	// the remote-reported size.
	ErrSizeMismatch = errors.New("transferred size mismatch")
	// ErrLocalIO is returned when the local filesystem rejects a transfer step.
	ErrLocalIO = errors.New("local filesystem error")

	// ErrCycleInProgress is returned by StartCycle while a cycle is running.
	ErrCycleInProgress = errors.New("sync cycle already in progress")
)
