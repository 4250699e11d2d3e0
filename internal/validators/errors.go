package validators

import "errors"

var (
	// ErrInvalidRequest wraps every field-level validation failure.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnsupportedType is returned for values that are not structs.
	ErrUnsupportedType = errors.New("unsupported type for validation")
)
