// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the fixed message strings the timetable API writes into
// response bodies, so every endpoint words the same outcome the same way.
package app

const (
	// MsgInternalServerError replaces the text of any unexpected failure.
	MsgInternalServerError = "internal server error"

	// MsgNotFound is returned for unknown routes and unsupported methods.
	MsgNotFound = "not found"

	// MsgRequestTimedOut is the body written when a request exceeds the
	// configured server timeout.
	MsgRequestTimedOut = "request timed out"

	MsgLoggedOut   = "logged out"
	MsgUserUpdated = "user updated"
	MsgUserDeleted = "user deleted"
)
