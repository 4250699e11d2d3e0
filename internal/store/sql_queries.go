package store

import (
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-timetable/models"
)

const (
	usersTable     = "users"
	timetableTable = "timetable"
	batchesTable   = "batches"
	lecturersTable = "lecturers"
)

var (
	userColumns      = []string{"id", "username", "password", "role", "school_number", "created_at"}
	timetableColumns = []string{"id", "day", "batch", "subject", "lecture", "lecturer_id", "room", "time_slot"}
	lookupColumns    = []string{"id", "name"}
)

// buildCreateUserQuery builds the INSERT of a new user returning its id.
func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("username", "password", "role", "school_number", "created_at").
		Values(user.Username, user.Password, string(user.Role), nullString(user.SchoolNumber), user.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
}

// buildFindUserQuery builds a single-user SELECT filtered by column = value.
func buildFindUserQuery(b sq.StatementBuilderType, column string, value any) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{column: value}).
		ToSql()
}

// buildListUsersQuery builds the SELECT of all users in insertion order,
// optionally restricted to one role.
func buildListUsersQuery(b sq.StatementBuilderType, role *models.Role) (string, []any, error) {
	query := b.Select(userColumns...).From(usersTable)
	if role != nil {
		query = query.Where(sq.Eq{"role": string(*role)})
	}
	return query.OrderBy("id").ToSql()
}

// buildUpdateUserQuery builds the partial UPDATE of a user. Only non-nil
// fields of update are written.
func buildUpdateUserQuery(b sq.StatementBuilderType, update models.UserUpdate) (string, []any, error) {
	query := b.Update(usersTable)
	if update.Username != nil {
		query = query.Set("username", *update.Username)
	}
	if update.Role != nil {
		query = query.Set("role", string(*update.Role))
	}
	return query.Where(sq.Eq{"id": update.UserID}).ToSql()
}

func buildDeleteUserQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Delete(usersTable).Where(sq.Eq{"id": userID}).ToSql()
}

// buildCreateEntryQuery builds the INSERT of a timetable entry. The weak
// lecturer_id reference is resolved in the same statement from the lecturer
// account whose username equals the lecture field; it stays NULL otherwise.
func buildCreateEntryQuery(b sq.StatementBuilderType, entry models.TimetableEntry) (string, []any, error) {
	lecturerID := sq.Expr("(SELECT id FROM users WHERE username = ? AND role = ?)", entry.Lecture, string(models.RoleLecturer))

	return b.Insert(timetableTable).
		Columns("day", "batch", "subject", "lecture", "lecturer_id", "room", "time_slot").
		Values(string(entry.Day), entry.Batch, entry.Subject, entry.Lecture, lecturerID, entry.Room, entry.Time).
		Suffix("RETURNING id, lecturer_id").
		ToSql()
}

// buildListEntriesQuery builds the SELECT of timetable entries in insertion
// order, optionally filtered by exact match on the lecture field.
func buildListEntriesQuery(b sq.StatementBuilderType, lecture *string) (string, []any, error) {
	query := b.Select(timetableColumns...).From(timetableTable)
	if lecture != nil {
		query = query.Where(sq.Eq{"lecture": *lecture})
	}
	return query.OrderBy("id").ToSql()
}

// buildCreateNameQuery builds the INSERT into one of the lookup tables.
// With ignoreConflict set, an existing name is left untouched and no row is
// returned.
func buildCreateNameQuery(b sq.StatementBuilderType, table, name string, ignoreConflict bool) (string, []any, error) {
	suffix := "RETURNING id"
	if ignoreConflict {
		suffix = "ON CONFLICT (name) DO NOTHING"
	}
	return b.Insert(table).
		Columns("name").
		Values(name).
		Suffix(suffix).
		ToSql()
}

func buildListNamesQuery(b sq.StatementBuilderType, table string) (string, []any, error) {
	return b.Select(lookupColumns...).From(table).OrderBy("id").ToSql()
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func int64Ptr(ni sql.NullInt64) *int64 {
	if !ni.Valid {
		return nil
	}
	v := ni.Int64
	return &v
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (models.User, error) {
	var (
		user         models.User
		role         string
		schoolNumber sql.NullString
		createdAt    time.Time
	)
	if err := row.Scan(&user.UserID, &user.Username, &user.Password, &role, &schoolNumber, &createdAt); err != nil {
		return models.User{}, err
	}
	user.Role = models.Role(role)
	user.SchoolNumber = stringPtr(schoolNumber)
	user.CreatedAt = createdAt
	return user, nil
}

func scanEntry(row scanner) (models.TimetableEntry, error) {
	var (
		entry      models.TimetableEntry
		day        string
		lecturerID sql.NullInt64
	)
	if err := row.Scan(&entry.ID, &day, &entry.Batch, &entry.Subject, &entry.Lecture, &lecturerID, &entry.Room, &entry.Time); err != nil {
		return models.TimetableEntry{}, err
	}
	entry.Day = models.Weekday(day)
	entry.LecturerID = int64Ptr(lecturerID)
	return entry, nil
}
