package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-timetable/internal/config"
	"github.com/MKhiriev/go-timetable/internal/logger"
	"github.com/MKhiriev/go-timetable/models"
)

func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()
	cfg := config.Storage{DB: config.DB{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "timetable.db"),
	}}

	s, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNewStorages_UnsupportedDriver(t *testing.T) {
	_, err := NewStorages(context.Background(), config.Storage{DB: config.DB{Driver: "mysql", DSN: "x"}}, logger.Nop())
	assert.Error(t, err)
}

func TestSQLiteStorages_UserLifecycle(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStorages(t)
	users := s.UserRepository

	alice, err := users.CreateUser(ctx, models.User{Username: "alice", Password: "h", Role: models.RoleStudent, SchoolNumber: models.StringPtr("S100")})
	require.NoError(t, err)
	assert.NotZero(t, alice.UserID)

	_, err = users.CreateUser(ctx, models.User{Username: "alice", Password: "h", Role: models.RoleStudent, SchoolNumber: models.StringPtr("S200")})
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)

	_, err = users.CreateUser(ctx, models.User{Username: "bob", Password: "h", Role: models.RoleStudent, SchoolNumber: models.StringPtr("S100")})
	assert.ErrorIs(t, err, ErrSchoolNumberAlreadyExists)

	// several NULL school numbers never collide
	_, err = users.CreateUser(ctx, models.User{Username: "admin1", Password: "h", Role: models.RoleAdmin})
	require.NoError(t, err)
	_, err = users.CreateUser(ctx, models.User{Username: "admin2", Password: "h", Role: models.RoleAdmin})
	require.NoError(t, err)

	found, err := users.FindUserBySchoolNumber(ctx, "S100")
	require.NoError(t, err)
	assert.Equal(t, alice.UserID, found.UserID)
	assert.False(t, found.CreatedAt.IsZero())

	err = users.UpdateUser(ctx, models.UserUpdate{UserID: alice.UserID, Username: models.StringPtr("admin1")})
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)

	role := models.RoleLecturer
	require.NoError(t, users.UpdateUser(ctx, models.UserUpdate{UserID: alice.UserID, Role: &role}))
	found, err = users.FindUserByID(ctx, alice.UserID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleLecturer, found.Role)
	assert.Equal(t, "alice", found.Username)

	all, err := users.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	require.NoError(t, users.DeleteUser(ctx, alice.UserID))
	assert.ErrorIs(t, users.DeleteUser(ctx, alice.UserID), ErrUserNotFound)
	_, err = users.FindUserByUsername(ctx, "alice")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSQLiteStorages_TimetableWeakReference(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStorages(t)

	lecturer, err := s.UserRepository.CreateUser(ctx, models.User{Username: "lecturer1", Password: "h", Role: models.RoleLecturer, SchoolNumber: models.StringPtr("dmi001")})
	require.NoError(t, err)

	linked, err := s.TimetableRepository.CreateEntry(ctx, models.TimetableEntry{Day: models.Monday, Batch: "B1", Subject: "Math", Lecture: "lecturer1", Room: "R101", Time: "9-10"})
	require.NoError(t, err)
	require.NotNil(t, linked.LecturerID)
	assert.Equal(t, lecturer.UserID, *linked.LecturerID)

	dangling, err := s.TimetableRepository.CreateEntry(ctx, models.TimetableEntry{Day: models.Tuesday, Batch: "B1", Subject: "Art", Lecture: "nobody", Room: "R1", Time: "1-2"})
	require.NoError(t, err)
	assert.Nil(t, dangling.LecturerID)

	// deleting the lecturer leaves the entry orphaned
	require.NoError(t, s.UserRepository.DeleteUser(ctx, lecturer.UserID))

	entries, err := s.TimetableRepository.ListEntriesByLecture(ctx, "lecturer1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, linked.ID, entries[0].ID)

	all, err := s.TimetableRepository.ListEntries(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSQLiteStorages_Lookups(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStorages(t)

	_, err := s.LookupRepository.CreateBatch(ctx, "B1")
	require.NoError(t, err)
	_, err = s.LookupRepository.CreateBatch(ctx, "B1")
	assert.ErrorIs(t, err, ErrBatchAlreadyExists)

	require.NoError(t, s.LookupRepository.EnsureLecturer(ctx, "lecturer1"))
	require.NoError(t, s.LookupRepository.EnsureLecturer(ctx, "lecturer1"))
	_, err = s.LookupRepository.CreateLecturer(ctx, "lecturer1")
	assert.ErrorIs(t, err, ErrLecturerAlreadyExists)

	lecturers, err := s.LookupRepository.ListLecturers(ctx)
	require.NoError(t, err)
	assert.Len(t, lecturers, 1)
}

func TestPostgresConstraintClassifier(t *testing.T) {
	c := PostgresConstraintClassifier{}

	column, ok := c.UniqueViolation(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_school_number_key"})
	assert.True(t, ok)
	assert.Equal(t, "school_number", column)

	column, ok = c.UniqueViolation(&pgconn.PgError{Code: pgerrcode.UniqueViolation, TableName: "users", ConstraintName: "users_username_key"})
	assert.True(t, ok)
	assert.Equal(t, "username", column)

	_, ok = c.UniqueViolation(&pgconn.PgError{Code: pgerrcode.CheckViolation})
	assert.False(t, ok)

	_, ok = c.UniqueViolation(errors.New("plain"))
	assert.False(t, ok)
}

func TestWithBusyTimeout(t *testing.T) {
	assert.Equal(t, "a.db?_busy_timeout=5000", withBusyTimeout("a.db"))
	assert.Equal(t, "file:a.db?cache=shared&_busy_timeout=5000", withBusyTimeout("file:a.db?cache=shared"))
	assert.Equal(t, "a.db?_busy_timeout=100", withBusyTimeout("a.db?_busy_timeout=100"))
}
