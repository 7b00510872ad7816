// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Mapping describes one configured remote-folder-to-local-folder sync
// relationship. A Mapping is immutable for the duration of a cycle.
type Mapping struct {
	// RemotePath is the slash-separated path of the remote folder
	// (e.g. "Movies/Action"). An empty path denotes the remote root.
	RemotePath string `json:"remote_path"`

	// LocalPath is the local directory the remote folder is mirrored into.
	LocalPath string `json:"local_path"`

	// Recursive enables descending into remote subfolders.
	Recursive bool `json:"recursive"`

	// DeleteAfterSync deletes the remote file once the local copy is
	// verified (freshly transferred or already present with equal size).
	DeleteAfterSync bool `json:"delete"`

	// DeleteEmptySubfolders deletes remote subfolders that have no children.
	// The mapping's root folder is never deleted.
	DeleteEmptySubfolders bool `json:"delete_subfolder"`
}

// Normalized returns a copy of m with leading and trailing path separators
// trimmed from RemotePath.
func (m Mapping) Normalized() Mapping {
	m.RemotePath = strings.Trim(strings.TrimSpace(m.RemotePath), "/")
	return m
}

// Segments splits the normalized remote path into folder names. Empty
// segments from repeated separators are dropped, so "Movies//Action" walks
// the same folders as "Movies/Action". The remote root yields an empty slice.
func (m Mapping) Segments() []string {
	var segments []string
	for _, segment := range strings.Split(m.Normalized().RemotePath, "/") {
		if segment != "" {
			segments = append(segments, segment)
		}
	}

	return segments
}
