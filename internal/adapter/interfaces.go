// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the remote file store.
//
// Two abstractions are defined here. [RemoteAdapter] covers the remote API
// (folder listings, download locations, deletions) and is implemented over
// HTTP/REST by [NewHTTPRemoteAdapter]. [ContentFetcher] covers the content
// transport used by transfers: one redirect hop to find the real content
// location and ranged GETs against it ([NewHTTPContentFetcher]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401). Every
// failure of a remote API call also matches [ErrRemote].
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-mirror-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_adapter_mock.go -package=mock

// RemoteAdapter defines transport-agnostic communication with the remote
// file store API. Implementations are responsible for serialisation,
// authentication and mapping transport-level errors to the sentinel values
// defined in this package.
type RemoteAdapter interface {
	// ListFolder returns the children of the folder identified by folderID
	// in the order reported by the remote, together with the folder itself.
	// Returns an error matching [ErrRemote] on transport or API failure.
	ListFolder(ctx context.Context, folderID int64) (models.FolderListing, error)

	// ResolveDownloadLocation returns a transient URL for the file's content.
	// Fetching the URL yields a redirect to the actual content location.
	ResolveDownloadLocation(ctx context.Context, fileID int64) (string, error)

	// Delete removes the given files or folders from the remote store.
	// Returns [ErrDeleteRejected] (wrapped) when the remote answers with a
	// status other than "OK", and [ErrNotFound] (wrapped) for ids that no
	// longer exist. Callers treat both as non-fatal.
	Delete(ctx context.Context, ids ...int64) error
}

// ContentFetcher performs the HTTP exchanges of a single file transfer.
type ContentFetcher interface {
	// Locate requests url without following redirects and returns the
	// absolute target of the redirect. Any non-redirect response yields
	// [ErrUnexpectedStatus] (wrapped).
	Locate(ctx context.Context, url string) (string, error)

	// Fetch issues a GET for url asking for the bytes from offset onward.
	// partial reports whether the server honoured the range (206); on a
	// plain 200 the body starts at byte 0. Network failures yield
	// [ErrTransport] (wrapped); other statuses yield [ErrUnexpectedStatus].
	// The caller must close body.
	Fetch(ctx context.Context, url string, offset int64) (body io.ReadCloser, partial bool, err error)
}
