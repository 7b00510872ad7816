// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// ErrNoStatusAddress is returned by NewServer when no status address is
	// configured. Callers treat it as "status API disabled".
	ErrNoStatusAddress = errors.New("no status address configured")

	// ErrListen wraps failures to bind the status address.
	ErrListen = errors.New("cannot listen on status address")
)
