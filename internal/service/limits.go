package service

import (
	"fmt"
	"unicode/utf8"
)

type fieldLimit struct {
	field string
	value string
	max   int
}

// checkLengths returns ErrValidation for the first value wider than its
// column.
func checkLengths(limits ...fieldLimit) error {
	for _, l := range limits {
		if utf8.RuneCountInString(l.value) > l.max {
			return fmt.Errorf("%w: %s must be at most %d characters", ErrValidation, l.field, l.max)
		}
	}
	return nil
}
