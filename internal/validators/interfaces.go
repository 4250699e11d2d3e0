// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks incoming request payloads before they reach the
// service layer. Handlers depend on the [Validator] interface; the
// go-playground implementation lives in [NewRequestValidator].
package validators

import "context"

// Validator checks a request value. When field names are passed only those
// fields are validated; otherwise the whole value is.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
