package service

import (
	"context"

	"github.com/MKhiriev/go-timetable/models"
)

// CredentialStore hashes and verifies passwords. It has no side effects.
type CredentialStore interface {
	// Hash returns a salted one-way encoding of plaintext. Two calls with the
	// same plaintext return different encodings.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext produced encoded. Malformed encodings
	// yield false.
	Verify(plaintext, encoded string) bool
}

// UserDirectory owns user accounts.
type UserDirectory interface {
	FindByUsername(ctx context.Context, username string) (models.User, error)
	FindBySchoolNumber(ctx context.Context, schoolNumber string) (models.User, error)
	FindByID(ctx context.Context, userID int64) (models.User, error)
	ListAll(ctx context.Context) ([]models.User, error)
	ListByRole(ctx context.Context, role models.Role) ([]models.User, error)

	// Register creates a student account.
	Register(ctx context.Context, username, password, schoolNumber string) (models.User, error)
	// AdminCreate creates an account of any role whose initial password and
	// school number are both registrationNumber.
	AdminCreate(ctx context.Context, username string, role models.Role, registrationNumber string) (models.User, error)
	Authenticate(ctx context.Context, username, password string) (models.User, error)

	Update(ctx context.Context, update models.UserUpdate) error
	Delete(ctx context.Context, userID int64) error

	// SeedDefaults creates the missing bootstrap accounts and returns how
	// many were created.
	SeedDefaults(ctx context.Context) (int, error)
}

// TimetableRegistry owns timetable entries.
type TimetableRegistry interface {
	Add(ctx context.Context, entry models.TimetableEntry) (models.TimetableEntry, error)
	ListAll(ctx context.Context) ([]models.TimetableEntry, error)
	ListByLecturer(ctx context.Context, username string) ([]models.TimetableEntry, error)
}

// LookupRegistry owns the batch and lecturer-name dropdown values.
type LookupRegistry interface {
	AddBatch(ctx context.Context, name string) (models.Batch, error)
	ListBatches(ctx context.Context) ([]models.Batch, error)
	AddLecturerName(ctx context.Context, name string) (models.Lecturer, error)
	ListLecturerNames(ctx context.Context) ([]models.Lecturer, error)
	EnsureLecturerName(ctx context.Context, name string) error
}

// SessionService turns principals into signed tokens and back.
type SessionService interface {
	Issue(ctx context.Context, p models.Principal) (models.Token, error)
	Parse(ctx context.Context, tokenString string) (models.Principal, error)
}

// Guard is the authorization boundary. Every call receives the caller's
// principal explicitly; protected operations reject anonymous or expired
// principals with [ErrUnauthenticated] and wrong roles with [ErrForbidden].
type Guard interface {
	Login(ctx context.Context, username, password string) (models.Token, error)
	Logout(ctx context.Context, p models.Principal) models.Principal
	Register(ctx context.Context, username, password, schoolNumber string) (models.User, error)

	WhoAmI(ctx context.Context, p models.Principal) (models.User, error)
	Dashboard(ctx context.Context, p models.Principal) (models.Dashboard, error)

	ListUsers(ctx context.Context, p models.Principal) ([]models.User, error)
	AddUser(ctx context.Context, p models.Principal, username string, role models.Role, registrationNumber string) (models.User, error)
	EditUser(ctx context.Context, p models.Principal, update models.UserUpdate) error
	DeleteUser(ctx context.Context, p models.Principal, userID int64) error

	AddTimetableEntry(ctx context.Context, p models.Principal, entry models.TimetableEntry) (models.TimetableEntry, error)
	ListAllTimetableEntries(ctx context.Context, p models.Principal) ([]models.TimetableEntry, error)
	ListTimetableEntriesForLecturer(ctx context.Context, p models.Principal, username string) ([]models.TimetableEntry, error)
	ListOwnTimetableEntries(ctx context.Context, p models.Principal) ([]models.TimetableEntry, error)
	TimetableForm(ctx context.Context, p models.Principal) (models.TimetableForm, error)

	AddBatch(ctx context.Context, p models.Principal, name string) (models.Batch, error)
	ListBatches(ctx context.Context, p models.Principal) ([]models.Batch, error)
	AddLecturerName(ctx context.Context, p models.Principal, name string) (models.Lecturer, error)
	ListLecturerNames(ctx context.Context, p models.Principal) ([]models.Lecturer, error)
}
