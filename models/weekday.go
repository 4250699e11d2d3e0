package models

import (
	"errors"
	"strings"
)

// ErrInvalidWeekday is returned by ParseWeekday for values outside Monday-Friday.
var ErrInvalidWeekday = errors.New("day must be one of Monday, Tuesday, Wednesday, Thursday, Friday")

// Weekday is a teaching day. Only the five working days are valid.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
)

// Weekdays lists the valid days in calendar order.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

// Valid reports whether d is one of the five weekdays.
func (d Weekday) Valid() bool {
	for _, w := range Weekdays {
		if d == w {
			return true
		}
	}
	return false
}

// ParseWeekday matches s case-insensitively against the weekday names.
func ParseWeekday(s string) (Weekday, error) {
	s = strings.TrimSpace(s)
	for _, w := range Weekdays {
		if strings.EqualFold(s, string(w)) {
			return w, nil
		}
	}
	return "", ErrInvalidWeekday
}

func (d Weekday) String() string {
	return string(d)
}
