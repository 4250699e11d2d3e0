// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, HTTP response
// writing, session token generation and validation, and other common
// operations.
package utils

import (
	"context"

	"github.com/MKhiriev/go-timetable/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// PrincipalCtxKey is the key used to store the caller's principal in the
// request context.
var PrincipalCtxKey = contextKey("principal")

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p models.Principal) context.Context {
	return context.WithValue(ctx, PrincipalCtxKey, p)
}

// GetPrincipalFromContext retrieves the principal stored in ctx.
//
// A missing or mistyped value yields [models.Anonymous], so callers can pass
// the result straight to the guard.
func GetPrincipalFromContext(ctx context.Context) models.Principal {
	p, ok := ctx.Value(PrincipalCtxKey).(models.Principal)
	if !ok {
		return models.Anonymous
	}
	return p
}
