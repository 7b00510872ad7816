// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// StatusOK is the status value the remote API returns for accepted requests.
const StatusOK = "OK"

// ListResponse is the body returned by the remote folder listing endpoint.
type ListResponse struct {
	// Status is "OK" for successful listings.
	Status string `json:"status"`

	// Files holds the folder's children in listing order.
	Files []RemoteEntry `json:"files"`

	// Parent describes the listed folder itself.
	Parent RemoteEntry `json:"parent"`

	// Cursor is set when more children are available via the listing
	// continuation endpoint.
	Cursor string `json:"cursor,omitempty"`
}

// StatusResponse is the body returned by mutating remote endpoints such as
// file deletion.
type StatusResponse struct {
	// Status is "OK" when the remote accepted the request.
	Status string `json:"status"`

	// ErrorMessage carries the remote's explanation for a rejected request.
	ErrorMessage string `json:"error_message,omitempty"`
}
