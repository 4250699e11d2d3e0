package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-timetable/internal/logger"
	"github.com/MKhiriev/go-timetable/internal/store"
	"github.com/MKhiriev/go-timetable/models"
)

type lookupRegistry struct {
	lookupRepository store.LookupRepository
	logger           *logger.Logger
}

// NewLookupRegistry constructs a [LookupRegistry] over the given repository.
func NewLookupRegistry(lookupRepository store.LookupRepository, logger *logger.Logger) LookupRegistry {
	return &lookupRegistry{
		lookupRepository: lookupRepository,
		logger:           logger,
	}
}

func (l *lookupRegistry) AddBatch(ctx context.Context, name string) (models.Batch, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Batch{}, fmt.Errorf("%w: batch name is required", ErrValidation)
	}
	if err := checkLengths(fieldLimit{"batch name", name, models.MaxBatchNameLen}); err != nil {
		return models.Batch{}, err
	}

	batch, err := l.lookupRepository.CreateBatch(ctx, name)
	if errors.Is(err, store.ErrBatchAlreadyExists) {
		return models.Batch{}, ErrDuplicateName
	}
	if err != nil {
		return models.Batch{}, fmt.Errorf("error adding batch: %w", err)
	}
	return batch, nil
}

func (l *lookupRegistry) ListBatches(ctx context.Context) ([]models.Batch, error) {
	batches, err := l.lookupRepository.ListBatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing batches: %w", err)
	}
	return batches, nil
}

func (l *lookupRegistry) AddLecturerName(ctx context.Context, name string) (models.Lecturer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Lecturer{}, fmt.Errorf("%w: lecturer name is required", ErrValidation)
	}
	if err := checkLengths(fieldLimit{"lecturer name", name, models.MaxLecturerNameLen}); err != nil {
		return models.Lecturer{}, err
	}

	lecturer, err := l.lookupRepository.CreateLecturer(ctx, name)
	if errors.Is(err, store.ErrLecturerAlreadyExists) {
		return models.Lecturer{}, ErrDuplicateName
	}
	if err != nil {
		return models.Lecturer{}, fmt.Errorf("error adding lecturer: %w", err)
	}
	return lecturer, nil
}

func (l *lookupRegistry) ListLecturerNames(ctx context.Context) ([]models.Lecturer, error) {
	lecturers, err := l.lookupRepository.ListLecturers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing lecturers: %w", err)
	}
	return lecturers, nil
}

// EnsureLecturerName adds name unless it is already listed.
func (l *lookupRegistry) EnsureLecturerName(ctx context.Context, name string) error {
	if err := l.lookupRepository.EnsureLecturer(ctx, name); err != nil {
		return fmt.Errorf("error ensuring lecturer %s: %w", name, err)
	}
	return nil
}
