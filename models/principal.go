package models

import "time"

// Principal is the authenticated identity attached to a session.
// The zero value is the anonymous principal.
type Principal struct {
	UserID    int64     `json:"user_id"`
	Role      Role      `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Anonymous is the principal of a caller that has not logged in.
var Anonymous = Principal{}

// Authenticated reports whether p carries an identity.
func (p Principal) Authenticated() bool {
	return p.UserID != 0 && p.Role != ""
}

// Expired reports whether p has an expiry that lies before now.
func (p Principal) Expired(now time.Time) bool {
	return !p.ExpiresAt.IsZero() && !now.Before(p.ExpiresAt)
}

// Dashboard is the role-specific landing view.
type Dashboard struct {
	View    string           `json:"view"`
	User    User             `json:"user"`
	Entries []TimetableEntry `json:"timetable,omitempty"`
}
