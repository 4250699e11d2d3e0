// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrInvalidUserID is returned when the {id} path segment is not a positive
// base-10 integer.
var ErrInvalidUserID = errors.New("invalid user id")
