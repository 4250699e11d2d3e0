package service

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/MKhiriev/go-timetable/internal/logger"
	"github.com/MKhiriev/go-timetable/models"
)

// guard is the concrete implementation of [Guard].
//
// It holds no per-caller state: the principal of every call arrives as an
// argument and a login only produces a new principal wrapped in a token.
type guard struct {
	users     UserDirectory
	timetable TimetableRegistry
	lookups   LookupRegistry
	sessions  SessionService

	// sessionDuration is added to the login time to form the expiry.
	sessionDuration time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewGuard constructs a [Guard] delegating to the given services.
func NewGuard(users UserDirectory, timetable TimetableRegistry, lookups LookupRegistry, sessions SessionService, sessionDuration time.Duration, logger *logger.Logger) Guard {
	return &guard{
		users:           users,
		timetable:       timetable,
		lookups:         lookups,
		sessions:        sessions,
		sessionDuration: sessionDuration,
		now:             time.Now,
		logger:          logger,
	}
}

// authorizeUser rejects anonymous and expired principals, then loads the
// account behind p. A deleted account no longer authenticates. The stored
// role, not the one carried in the token, must be among roles; with no roles
// any existing account passes.
func (g *guard) authorizeUser(ctx context.Context, p models.Principal, roles ...models.Role) (models.User, error) {
	if !p.Authenticated() || p.Expired(g.now()) {
		return models.User{}, ErrUnauthenticated
	}

	user, err := g.users.FindByID(ctx, p.UserID)
	if errors.Is(err, ErrNotFound) {
		return models.User{}, ErrUnauthenticated
	}
	if err != nil {
		return models.User{}, err
	}

	if len(roles) > 0 && !slices.Contains(roles, user.Role) {
		if user.Role != p.Role {
			logger.FromContext(ctx).Info().
				Int64("user_id", p.UserID).
				Str("user_role", user.Role.String()).
				Msg("role changed since login")
		}
		return models.User{}, ErrForbidden
	}
	return user, nil
}

// Login authenticates the credentials and returns a session token for the
// resulting principal.
func (g *guard) Login(ctx context.Context, username, password string) (models.Token, error) {
	log := logger.FromContext(ctx)

	user, err := g.users.Authenticate(ctx, username, password)
	if err != nil {
		return models.Token{}, err
	}

	principal := models.Principal{
		UserID:    user.UserID,
		Role:      user.Role,
		ExpiresAt: g.now().Add(g.sessionDuration),
	}

	token, err := g.sessions.Issue(ctx, principal)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("error issuing session token")
		return models.Token{}, err
	}

	log.Info().Int64("user_id", user.UserID).Str("user_role", user.Role.String()).Msg("user logged in")
	return token, nil
}

// Logout always yields the anonymous principal.
func (g *guard) Logout(ctx context.Context, p models.Principal) models.Principal {
	if p.Authenticated() {
		logger.FromContext(ctx).Info().Int64("user_id", p.UserID).Msg("user logged out")
	}
	return models.Anonymous
}

func (g *guard) Register(ctx context.Context, username, password, schoolNumber string) (models.User, error) {
	return g.users.Register(ctx, username, password, schoolNumber)
}

func (g *guard) WhoAmI(ctx context.Context, p models.Principal) (models.User, error) {
	return g.authorizeUser(ctx, p)
}

// Dashboard returns the landing view of p's role. Lecturers also get their
// own entries.
func (g *guard) Dashboard(ctx context.Context, p models.Principal) (models.Dashboard, error) {
	user, err := g.authorizeUser(ctx, p)
	if err != nil {
		return models.Dashboard{}, err
	}

	dashboard := models.Dashboard{View: user.Role.String(), User: user}
	if user.Role == models.RoleLecturer {
		if dashboard.Entries, err = g.timetable.ListByLecturer(ctx, user.Username); err != nil {
			return models.Dashboard{}, err
		}
	}
	return dashboard, nil
}

func (g *guard) ListUsers(ctx context.Context, p models.Principal) ([]models.User, error) {
	if _, err := g.authorizeUser(ctx, p, models.RoleAdmin); err != nil {
		return nil, err
	}
	return g.users.ListAll(ctx)
}

func (g *guard) AddUser(ctx context.Context, p models.Principal, username string, role models.Role, registrationNumber string) (models.User, error) {
	if _, err := g.authorizeUser(ctx, p, models.RoleAdmin); err != nil {
		return models.User{}, err
	}
	return g.users.AdminCreate(ctx, username, role, registrationNumber)
}

func (g *guard) EditUser(ctx context.Context, p models.Principal, update models.UserUpdate) error {
	if _, err := g.authorizeUser(ctx, p, models.RoleAdmin); err != nil {
		return err
	}
	return g.users.Update(ctx, update)
}

func (g *guard) DeleteUser(ctx context.Context, p models.Principal, userID int64) error {
	if _, err := g.authorizeUser(ctx, p, models.RoleAdmin); err != nil {
		return err
	}
	return g.users.Delete(ctx, userID)
}

func (g *guard) AddTimetableEntry(ctx context.Context, p models.Principal, entry models.TimetableEntry) (models.TimetableEntry, error) {
	if _, err := g.authorizeUser(ctx, p, models.RoleAdmin); err != nil {
		return models.TimetableEntry{}, err
	}
	return g.timetable.Add(ctx, entry)
}

func (g *guard) ListAllTimetableEntries(ctx context.Context, p models.Principal) ([]models.TimetableEntry, error) {
	if _, err := g.authorizeUser(ctx, p, models.RoleAdmin); err != nil {
		return nil, err
	}
	return g.timetable.ListAll(ctx)
}

// ListTimetableEntriesForLecturer lists the entries of username for a
// lecturer principal. A lecturer asking for anyone but themselves gets an
// empty sequence.
func (g *guard) ListTimetableEntriesForLecturer(ctx context.Context, p models.Principal, username string) ([]models.TimetableEntry, error) {
	user, err := g.authorizeUser(ctx, p, models.RoleLecturer)
	if err != nil {
		return nil, err
	}
	if user.Username != username {
		logger.FromContext(ctx).Debug().Int64("user_id", p.UserID).Msg("lecturer asked for foreign timetable")
		return []models.TimetableEntry{}, nil
	}

	return g.timetable.ListByLecturer(ctx, username)
}

func (g *guard) ListOwnTimetableEntries(ctx context.Context, p models.Principal) ([]models.TimetableEntry, error) {
	user, err := g.authorizeUser(ctx, p, models.RoleLecturer)
	if err != nil {
		return nil, err
	}
	return g.timetable.ListByLecturer(ctx, user.Username)
}

// TimetableForm gathers the dropdown values and current entries for the
// admin timetable form.
func (g *guard) TimetableForm(ctx context.Context, p models.Principal) (models.TimetableForm, error) {
	if _, err := g.authorizeUser(ctx, p, models.RoleAdmin); err != nil {
		return models.TimetableForm{}, err
	}

	batches, err := g.lookups.ListBatches(ctx)
	if err != nil {
		return models.TimetableForm{}, err
	}
	lecturers, err := g.users.ListByRole(ctx, models.RoleLecturer)
	if err != nil {
		return models.TimetableForm{}, err
	}
	entries, err := g.timetable.ListAll(ctx)
	if err != nil {
		return models.TimetableForm{}, err
	}

	return models.TimetableForm{Batches: batches, Lecturers: lecturers, Entries: entries}, nil
}

func (g *guard) AddBatch(ctx context.Context, p models.Principal, name string) (models.Batch, error) {
	if _, err := g.authorizeUser(ctx, p, models.RoleAdmin); err != nil {
		return models.Batch{}, err
	}
	return g.lookups.AddBatch(ctx, name)
}

func (g *guard) ListBatches(ctx context.Context, p models.Principal) ([]models.Batch, error) {
	if _, err := g.authorizeUser(ctx, p, models.RoleAdmin); err != nil {
		return nil, err
	}
	return g.lookups.ListBatches(ctx)
}

func (g *guard) AddLecturerName(ctx context.Context, p models.Principal, name string) (models.Lecturer, error) {
	if _, err := g.authorizeUser(ctx, p, models.RoleAdmin); err != nil {
		return models.Lecturer{}, err
	}
	return g.lookups.AddLecturerName(ctx, name)
}

func (g *guard) ListLecturerNames(ctx context.Context, p models.Principal) ([]models.Lecturer, error) {
	if _, err := g.authorizeUser(ctx, p, models.RoleAdmin); err != nil {
		return nil, err
	}
	return g.lookups.ListLecturerNames(ctx)
}
