// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DirectoryContentType is the content type the remote store reports for folders.
const DirectoryContentType = "application/x-directory"

// RootFolderID identifies the root folder of the remote store.
const RootFolderID int64 = 0

// RemoteEntry is a single child of a remote folder as reported by the
// remote listing. Entries are fetched per reconciliation call and never
// cached across cycles.
type RemoteEntry struct {
	ID          int64  `json:"id"`
	ParentID    int64  `json:"parent_id"`
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// IsDir reports whether the entry is a folder.
func (e RemoteEntry) IsDir() bool {
	return e.ContentType == DirectoryContentType
}

// FolderListing is the result of listing one remote folder.
type FolderListing struct {
	// Children holds the folder's entries in the order returned by the remote.
	Children []RemoteEntry `json:"files"`

	// Parent describes the listed folder itself.
	Parent RemoteEntry `json:"parent"`
}
