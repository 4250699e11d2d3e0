package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-timetable/internal/logger"
	"github.com/MKhiriev/go-timetable/internal/store"
	"github.com/MKhiriev/go-timetable/models"
)

type timetableRegistry struct {
	timetableRepository store.TimetableRepository
	logger              *logger.Logger
}

// NewTimetableRegistry constructs a [TimetableRegistry] over the given
// repository.
func NewTimetableRegistry(timetableRepository store.TimetableRepository, logger *logger.Logger) TimetableRegistry {
	return &timetableRegistry{
		timetableRepository: timetableRepository,
		logger:              logger,
	}
}

// Add stores entry after checking the weekday and that every other field is
// non-empty. The lecturer username is not checked against the accounts.
func (t *timetableRegistry) Add(ctx context.Context, entry models.TimetableEntry) (models.TimetableEntry, error) {
	log := logger.FromContext(ctx)

	day, err := models.ParseWeekday(string(entry.Day))
	if err != nil {
		return models.TimetableEntry{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	entry = models.TimetableEntry{
		Day:     day,
		Batch:   strings.TrimSpace(entry.Batch),
		Subject: strings.TrimSpace(entry.Subject),
		Lecture: strings.TrimSpace(entry.Lecture),
		Room:    strings.TrimSpace(entry.Room),
		Time:    strings.TrimSpace(entry.Time),
	}
	if missing := missingEntryFields(entry); len(missing) > 0 {
		return models.TimetableEntry{}, fmt.Errorf("%w: %s required", ErrValidation, strings.Join(missing, ", "))
	}
	if err := checkLengths(
		fieldLimit{"batch", entry.Batch, models.MaxBatchLen},
		fieldLimit{"subject", entry.Subject, models.MaxSubjectLen},
		fieldLimit{"lecture", entry.Lecture, models.MaxLectureLen},
		fieldLimit{"room", entry.Room, models.MaxRoomLen},
		fieldLimit{"time", entry.Time, models.MaxTimeLen},
	); err != nil {
		return models.TimetableEntry{}, err
	}

	created, err := t.timetableRepository.CreateEntry(ctx, entry)
	if err != nil {
		log.Err(err).Msg("error adding timetable entry")
		return models.TimetableEntry{}, fmt.Errorf("error adding timetable entry: %w", err)
	}

	if created.LecturerID == nil {
		log.Warn().Str("lecture", created.Lecture).Msg("timetable entry references an unknown lecturer")
	}
	return created, nil
}

func (t *timetableRegistry) ListAll(ctx context.Context) ([]models.TimetableEntry, error) {
	entries, err := t.timetableRepository.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing timetable: %w", err)
	}
	return entries, nil
}

// ListByLecturer returns the entries whose lecture field equals username
// exactly.
func (t *timetableRegistry) ListByLecturer(ctx context.Context, username string) ([]models.TimetableEntry, error) {
	entries, err := t.timetableRepository.ListEntriesByLecture(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("error listing timetable for lecturer: %w", err)
	}
	return entries, nil
}

func missingEntryFields(e models.TimetableEntry) []string {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"batch", e.Batch},
		{"subject", e.Subject},
		{"lecture", e.Lecture},
		{"room", e.Room},
		{"time", e.Time},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}
