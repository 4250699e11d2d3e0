package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-timetable/internal/logger"
	"github.com/MKhiriev/go-timetable/models"
)

// lookupRepository backs the batch and lecturer-name dropdown tables.
// Both tables share the (id, name) shape.
type lookupRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewLookupRepository constructs a [LookupRepository] backed by db.
func NewLookupRepository(db *DB, logger *logger.Logger) LookupRepository {
	logger.Debug().Msg("creating lookup repository")
	return &lookupRepository{
		db:     db,
		logger: logger,
	}
}

func (r *lookupRepository) CreateBatch(ctx context.Context, name string) (models.Batch, error) {
	id, err := r.createName(ctx, batchesTable, name, ErrBatchAlreadyExists)
	if err != nil {
		return models.Batch{}, err
	}
	return models.Batch{ID: id, Name: name}, nil
}

func (r *lookupRepository) ListBatches(ctx context.Context) ([]models.Batch, error) {
	batches := make([]models.Batch, 0)
	err := r.listNames(ctx, batchesTable, func(id int64, name string) {
		batches = append(batches, models.Batch{ID: id, Name: name})
	})
	if err != nil {
		return nil, err
	}
	return batches, nil
}

func (r *lookupRepository) CreateLecturer(ctx context.Context, name string) (models.Lecturer, error) {
	id, err := r.createName(ctx, lecturersTable, name, ErrLecturerAlreadyExists)
	if err != nil {
		return models.Lecturer{}, err
	}
	return models.Lecturer{ID: id, Name: name}, nil
}

func (r *lookupRepository) ListLecturers(ctx context.Context) ([]models.Lecturer, error) {
	lecturers := make([]models.Lecturer, 0)
	err := r.listNames(ctx, lecturersTable, func(id int64, name string) {
		lecturers = append(lecturers, models.Lecturer{ID: id, Name: name})
	})
	if err != nil {
		return nil, err
	}
	return lecturers, nil
}

func (r *lookupRepository) EnsureLecturer(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateNameQuery(r.db.builder, lecturersTable, name, true)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*lookupRepository.EnsureLecturer").Msg("error inserting lecturer")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func (r *lookupRepository) createName(ctx context.Context, table, name string, duplicate error) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateNameQuery(r.db.builder, table, name, false)
	if err != nil {
		log.Err(err).Str("func", "*lookupRepository.createName").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		log.Err(err).Str("func", "*lookupRepository.createName").Str("table", table).Msg("error inserting name")
		if _, ok := r.db.uniqueViolation(err); ok {
			return 0, duplicate
		}
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return id, nil
}

func (r *lookupRepository) listNames(ctx context.Context, table string, add func(id int64, name string)) error {
	log := logger.FromContext(ctx)

	query, args, err := buildListNamesQuery(r.db.builder, table)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*lookupRepository.listNames").Str("table", table).Msg("error executing query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id   int64
			name string
		)
		if err = rows.Scan(&id, &name); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		add(id, name)
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return nil
}
