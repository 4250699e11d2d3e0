package models

import "time"

// User represents an account of the timetable application.
// Password always holds the scrypt-encoded hash, never the plaintext.
type User struct {
	// UserID is the system-assigned identifier. Immutable.
	UserID int64 `json:"id"`

	// Username is globally unique and used to log in.
	Username string `json:"username"`

	// Password is the encoded hash produced by the credential store.
	// It is never serialized into responses.
	Password string `json:"-"`

	// Role is exactly one of admin, lecturer or student.
	Role Role `json:"role"`

	// SchoolNumber is the optional secondary identity. Unique when present,
	// nil for accounts created without one.
	SchoolNumber *string `json:"school_number,omitempty"`

	// CreatedAt is the timestamp when the account was persisted.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserUpdate is a partial update of a user. Nil fields are left unchanged.
type UserUpdate struct {
	UserID   int64
	Username *string
	Role     *Role
}

// Empty reports whether the update carries no field to change.
func (u UserUpdate) Empty() bool {
	return u.Username == nil && u.Role == nil
}

// StringPtr returns a pointer to s, or nil when s is empty.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
