package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-timetable/internal/logger"
	"github.com/MKhiriev/go-timetable/models"
)

type timetableRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTimetableRepository constructs a [TimetableRepository] backed by db.
func NewTimetableRepository(db *DB, logger *logger.Logger) TimetableRepository {
	logger.Debug().Msg("creating timetable repository")
	return &timetableRepository{
		db:     db,
		logger: logger,
	}
}

// CreateEntry inserts entry and returns it with its id and the resolved weak
// lecturer reference.
func (r *timetableRepository) CreateEntry(ctx context.Context, entry models.TimetableEntry) (models.TimetableEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateEntryQuery(r.db.builder, entry)
	if err != nil {
		log.Err(err).Str("func", "*timetableRepository.CreateEntry").Msg("error building query")
		return models.TimetableEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var lecturerID sql.NullInt64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &lecturerID); err != nil {
		log.Err(err).Str("func", "*timetableRepository.CreateEntry").Msg("error inserting timetable entry")
		return models.TimetableEntry{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	entry.LecturerID = int64Ptr(lecturerID)

	return entry, nil
}

// ListEntries returns every entry in insertion order.
func (r *timetableRepository) ListEntries(ctx context.Context) ([]models.TimetableEntry, error) {
	return r.listEntries(ctx, nil)
}

// ListEntriesByLecture returns the entries whose lecture field equals
// lecture exactly.
func (r *timetableRepository) ListEntriesByLecture(ctx context.Context, lecture string) ([]models.TimetableEntry, error) {
	return r.listEntries(ctx, &lecture)
}

func (r *timetableRepository) listEntries(ctx context.Context, lecture *string) ([]models.TimetableEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListEntriesQuery(r.db.builder, lecture)
	if err != nil {
		log.Err(err).Str("func", "*timetableRepository.listEntries").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*timetableRepository.listEntries").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.TimetableEntry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			log.Err(err).Str("func", "*timetableRepository.listEntries").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}
