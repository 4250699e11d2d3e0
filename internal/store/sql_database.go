package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-timetable/internal/logger"
	"github.com/MKhiriev/go-timetable/migrations"
)

// DB is a database handle bundled with the dialect-specific pieces the
// repositories need: the squirrel placeholder format, the goose dialect and
// the unique-violation classifier.
type DB struct {
	*sql.DB
	dialect    string
	builder    sq.StatementBuilderType
	classifier ConstraintClassifier
	logger     *logger.Logger
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Dialect returns the goose dialect name of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

// uniqueViolation delegates to the configured classifier.
func (db *DB) uniqueViolation(err error) (string, bool) {
	if db.classifier == nil || err == nil {
		return "", false
	}
	return db.classifier.UniqueViolation(err)
}
