package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an insert or rename collides
	// with the unique username index.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrSchoolNumberAlreadyExists is returned when an insert collides with
	// the unique school number index.
	ErrSchoolNumberAlreadyExists = errors.New("school number already exists")

	// ErrUserNotFound is returned when no user matches the lookup key, or
	// when an update or delete affected no row.
	ErrUserNotFound = errors.New("user not found")

	// ErrBatchAlreadyExists is returned when a batch name is taken.
	ErrBatchAlreadyExists = errors.New("batch already exists")

	// ErrLecturerAlreadyExists is returned when a lecturer name is taken.
	ErrLecturerAlreadyExists = errors.New("lecturer already exists")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning during multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
