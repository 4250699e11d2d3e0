package store

import (
	"context"

	"github.com/MKhiriev/go-timetable/models"
)

//go:generate mockgen -destination=../mock/store.go -package=mock github.com/MKhiriev/go-timetable/internal/store UserRepository,TimetableRepository,LookupRepository

// UserRepository persists user accounts in the "users" table.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserBySchoolNumber(ctx context.Context, schoolNumber string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	ListUsersByRole(ctx context.Context, role models.Role) ([]models.User, error)
	UpdateUser(ctx context.Context, update models.UserUpdate) error
	DeleteUser(ctx context.Context, userID int64) error
}

// TimetableRepository persists timetable entries in the "timetable" table.
type TimetableRepository interface {
	CreateEntry(ctx context.Context, entry models.TimetableEntry) (models.TimetableEntry, error)
	ListEntries(ctx context.Context) ([]models.TimetableEntry, error)
	ListEntriesByLecture(ctx context.Context, lecture string) ([]models.TimetableEntry, error)
}

// LookupRepository persists the batch and lecturer-name dropdown tables.
type LookupRepository interface {
	CreateBatch(ctx context.Context, name string) (models.Batch, error)
	ListBatches(ctx context.Context) ([]models.Batch, error)
	CreateLecturer(ctx context.Context, name string) (models.Lecturer, error)
	ListLecturers(ctx context.Context) ([]models.Lecturer, error)
	// EnsureLecturer inserts name unless it already exists.
	EnsureLecturer(ctx context.Context, name string) error
}

// ConstraintClassifier recognises unique-constraint violations raised by a
// particular database driver.
type ConstraintClassifier interface {
	// UniqueViolation reports whether err is a unique violation and, if so,
	// the name of the violated column.
	UniqueViolation(err error) (column string, ok bool)
}
