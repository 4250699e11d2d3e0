package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-timetable/internal/config"
	"github.com/MKhiriev/go-timetable/internal/logger"
)

// Storages aggregates every repository backed by one database.
type Storages struct {
	UserRepository      UserRepository
	TimetableRepository TimetableRepository
	LookupRepository    LookupRepository

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.DB.Driver {
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB.DSN, log)
	case config.DriverSQLite, "":
		db, err = NewConnectSQLite(ctx, cfg.DB.DSN, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DB.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}
	log.Info().Str("dialect", db.Dialect()).Msg("database migrated")

	return NewStoragesFromDB(db, log), nil
}

// NewStoragesFromDB builds the repositories on an already opened database.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:      NewUserRepository(db, log),
		TimetableRepository: NewTimetableRepository(db, log),
		LookupRepository:    NewLookupRepository(db, log),
		db:                  db,
	}
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// PingContext checks that the database is reachable.
func (s *Storages) PingContext(ctx context.Context) error {
	if s.db == nil {
		return errors.New("storage is not connected")
	}
	return s.db.PingContext(ctx)
}
