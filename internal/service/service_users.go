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

// userDirectory is the concrete implementation of [UserDirectory].
// Uniqueness is checked up front to report the first failing key, and the
// unique indexes of the store catch the remaining races.
type userDirectory struct {
	userRepository store.UserRepository
	credentials    CredentialStore
	logger         *logger.Logger
}

// NewUserDirectory constructs a [UserDirectory] over userRepository that
// hashes passwords with credentials.
func NewUserDirectory(userRepository store.UserRepository, credentials CredentialStore, logger *logger.Logger) UserDirectory {
	return &userDirectory{
		userRepository: userRepository,
		credentials:    credentials,
		logger:         logger,
	}
}

func (d *userDirectory) FindByUsername(ctx context.Context, username string) (models.User, error) {
	user, err := d.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		return models.User{}, mapUserStoreError(err)
	}
	return user, nil
}

func (d *userDirectory) FindBySchoolNumber(ctx context.Context, schoolNumber string) (models.User, error) {
	user, err := d.userRepository.FindUserBySchoolNumber(ctx, schoolNumber)
	if err != nil {
		return models.User{}, mapUserStoreError(err)
	}
	return user, nil
}

func (d *userDirectory) FindByID(ctx context.Context, userID int64) (models.User, error) {
	user, err := d.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, mapUserStoreError(err)
	}
	return user, nil
}

func (d *userDirectory) ListAll(ctx context.Context) ([]models.User, error) {
	users, err := d.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return users, nil
}

func (d *userDirectory) ListByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}

	users, err := d.userRepository.ListUsersByRole(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("error listing users by role: %w", err)
	}
	return users, nil
}

// Register creates a student account. The username is checked before the
// school number and nothing is written when either is taken.
func (d *userDirectory) Register(ctx context.Context, username, password, schoolNumber string) (models.User, error) {
	log := logger.FromContext(ctx)

	username, schoolNumber = strings.TrimSpace(username), strings.TrimSpace(schoolNumber)
	if username == "" || password == "" || schoolNumber == "" {
		return models.User{}, fmt.Errorf("%w: username, password and school number are required", ErrValidation)
	}
	if err := checkLengths(
		fieldLimit{"username", username, models.MaxUsernameLen},
		fieldLimit{"school number", schoolNumber, models.MaxSchoolNumberLen},
	); err != nil {
		return models.User{}, err
	}

	if err := d.ensureUsernameFree(ctx, username); err != nil {
		return models.User{}, err
	}
	if err := d.ensureSchoolNumberFree(ctx, schoolNumber); err != nil {
		return models.User{}, err
	}

	user, err := d.create(ctx, username, password, models.RoleStudent, schoolNumber)
	if err != nil {
		log.Err(err).Str("username", username).Msg("registration failed")
		return models.User{}, err
	}

	log.Info().Int64("user_id", user.UserID).Msg("student registered")
	return user, nil
}

// AdminCreate creates an account of any role. The registration number is
// both the school number and the initial password.
func (d *userDirectory) AdminCreate(ctx context.Context, username string, role models.Role, registrationNumber string) (models.User, error) {
	log := logger.FromContext(ctx)

	username, registrationNumber = strings.TrimSpace(username), strings.TrimSpace(registrationNumber)
	if username == "" || registrationNumber == "" {
		return models.User{}, fmt.Errorf("%w: username and registration number are required", ErrValidation)
	}
	if err := checkLengths(
		fieldLimit{"username", username, models.MaxUsernameLen},
		fieldLimit{"registration number", registrationNumber, models.MaxSchoolNumberLen},
	); err != nil {
		return models.User{}, err
	}
	if !role.Valid() {
		return models.User{}, fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}

	if err := d.ensureUsernameFree(ctx, username); err != nil {
		return models.User{}, err
	}

	user, err := d.create(ctx, username, registrationNumber, role, registrationNumber)
	if err != nil {
		log.Err(err).Str("username", username).Msg("admin user creation failed")
		return models.User{}, err
	}

	log.Info().Int64("user_id", user.UserID).Str("user_role", role.String()).Msg("user created by admin")
	return user, nil
}

// Authenticate returns the user whose password matches. Unknown usernames
// and wrong passwords both yield [ErrInvalidCredentials].
func (d *userDirectory) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	user, err := d.userRepository.FindUserByUsername(ctx, username)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Msg("login attempt for unknown user")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, fmt.Errorf("error looking up user: %w", err)
	}

	if !d.credentials.Verify(password, user.Password) {
		log.Debug().Int64("user_id", user.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// Update applies a partial change of username and/or role.
func (d *userDirectory) Update(ctx context.Context, update models.UserUpdate) error {
	if update.Username != nil {
		name := strings.TrimSpace(*update.Username)
		if name == "" {
			return fmt.Errorf("%w: username must not be empty", ErrValidation)
		}
		if err := checkLengths(fieldLimit{"username", name, models.MaxUsernameLen}); err != nil {
			return err
		}
		update.Username = &name
	}
	if update.Role != nil && !update.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", ErrValidation, *update.Role)
	}

	if err := d.userRepository.UpdateUser(ctx, update); err != nil {
		return mapUserStoreError(err)
	}
	return nil
}

// Delete removes the user. Timetable entries naming the user are kept.
func (d *userDirectory) Delete(ctx context.Context, userID int64) error {
	if err := d.userRepository.DeleteUser(ctx, userID); err != nil {
		return mapUserStoreError(err)
	}
	return nil
}

// SeedDefaults creates each bootstrap account that is not yet present.
func (d *userDirectory) SeedDefaults(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	created := 0
	for _, account := range defaultAccounts {
		var err error
		if account.identifiedBySchoolNumber() {
			_, err = d.userRepository.FindUserBySchoolNumber(ctx, account.SchoolNumber)
		} else {
			_, err = d.userRepository.FindUserByUsername(ctx, account.Username)
		}
		if err == nil {
			continue
		}
		if !errors.Is(err, store.ErrUserNotFound) {
			return created, fmt.Errorf("error checking seed account %s: %w", account.Username, err)
		}

		_, err = d.create(ctx, account.Username, account.Password, account.Role, account.SchoolNumber)
		switch {
		case errors.Is(err, ErrDuplicateUsername), errors.Is(err, ErrDuplicateSchoolNumber):
			log.Warn().Str("username", account.Username).Msg("seed account collides with an existing user, skipped")
			continue
		case err != nil:
			return created, fmt.Errorf("error creating seed account %s: %w", account.Username, err)
		}
		created++
	}

	log.Info().Int("created", created).Msg("default accounts seeded")
	return created, nil
}

func (d *userDirectory) create(ctx context.Context, username, password string, role models.Role, schoolNumber string) (models.User, error) {
	hash, err := d.credentials.Hash(password)
	if err != nil {
		return models.User{}, err
	}

	user, err := d.userRepository.CreateUser(ctx, models.User{
		Username:     username,
		Password:     hash,
		Role:         role,
		SchoolNumber: models.StringPtr(schoolNumber),
	})
	if err != nil {
		return models.User{}, mapUserStoreError(err)
	}
	return user, nil
}

func (d *userDirectory) ensureUsernameFree(ctx context.Context, username string) error {
	_, err := d.userRepository.FindUserByUsername(ctx, username)
	switch {
	case err == nil:
		return ErrDuplicateUsername
	case errors.Is(err, store.ErrUserNotFound):
		return nil
	default:
		return fmt.Errorf("error checking username: %w", err)
	}
}

func (d *userDirectory) ensureSchoolNumberFree(ctx context.Context, schoolNumber string) error {
	_, err := d.userRepository.FindUserBySchoolNumber(ctx, schoolNumber)
	switch {
	case err == nil:
		return ErrDuplicateSchoolNumber
	case errors.Is(err, store.ErrUserNotFound):
		return nil
	default:
		return fmt.Errorf("error checking school number: %w", err)
	}
}

// mapUserStoreError translates store sentinels into service sentinels and
// wraps anything else.
func mapUserStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return ErrNotFound
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return ErrDuplicateUsername
	case errors.Is(err, store.ErrSchoolNumberAlreadyExists):
		return ErrDuplicateSchoolNumber
	default:
		return fmt.Errorf("user store error: %w", err)
	}
}
