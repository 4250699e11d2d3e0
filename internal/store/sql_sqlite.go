package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-timetable/internal/logger"
	"github.com/MKhiriev/go-timetable/migrations"
)

// NewConnectSQLite opens the embedded SQLite database at dsn. The file is
// created by the driver when missing.
//
// SQLite allows a single writer; the pool is limited to one connection so
// concurrent requests queue instead of failing with "database is locked".
func NewConnectSQLite(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("sqlite3", withBusyTimeout(dsn))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}
	conn.SetMaxOpenConns(1)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return &DB{
		DB:         conn,
		dialect:    migrations.DialectSQLite,
		builder:    sq.StatementBuilder.PlaceholderFormat(sq.Question),
		classifier: SQLiteConstraintClassifier{},
		logger:     log,
	}, nil
}

func withBusyTimeout(dsn string) string {
	if strings.Contains(dsn, "_busy_timeout") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_busy_timeout=5000"
	}
	return dsn + "?_busy_timeout=5000"
}

// SQLiteConstraintClassifier implements [ConstraintClassifier] for
// mattn/go-sqlite3 errors.
type SQLiteConstraintClassifier struct{}

// UniqueViolation extracts the column from messages of the form
// "UNIQUE constraint failed: users.username".
func (SQLiteConstraintClassifier) UniqueViolation(err error) (string, bool) {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) || sqliteErr.ExtendedCode != sqlite3.ErrConstraintUnique {
		return "", false
	}

	msg := sqliteErr.Error()
	if i := strings.LastIndex(msg, "."); i >= 0 {
		return strings.TrimSpace(msg[i+1:]), true
	}
	return "", true
}
