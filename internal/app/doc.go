// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app wires the mirror daemon: the single-instance lock, the
// transfer journal, the remote adapter, the sync engine and the optional
// status API and progress view.
package app
