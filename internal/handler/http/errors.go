// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrInvalidLimit is returned when the "limit" query parameter of the
// transfers endpoint is not a whole number between 1 and 500.
var ErrInvalidLimit = errors.New("limit must be a number between 1 and 500")
