package service

import "errors"

// Sentinel errors of the service layer. Store-level errors are translated
// into these before they leave a service, so callers match with [errors.Is]
// against this package only.
var (
	ErrDuplicateUsername     = errors.New("username already exists")
	ErrDuplicateSchoolNumber = errors.New("school number already exists")
	ErrDuplicateName         = errors.New("name already exists")

	// ErrInvalidCredentials does not reveal whether the username or the
	// password was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")

	// ErrValidation wraps a description of the missing or malformed field.
	ErrValidation = errors.New("validation error")

	ErrSessionExpiredOrInvalid = errors.New("session is expired or invalid")
	ErrTokenCreationFailed     = errors.New("session token creation failed")
)
