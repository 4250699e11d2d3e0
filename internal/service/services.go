package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-timetable/internal/config"
	"github.com/MKhiriev/go-timetable/internal/logger"
	"github.com/MKhiriev/go-timetable/internal/store"
	"github.com/MKhiriev/go-timetable/models"
)

type Services struct {
	Credentials    CredentialStore
	Users          UserDirectory
	Timetable      TimetableRegistry
	Lookups        LookupRegistry
	Sessions       SessionService
	Guard          Guard
	AppInfoService AppInfoService

	skipSeed bool
	logger   *logger.Logger
}

func NewServices(storages *store.Storages, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	credentials := NewCredentialStore(cfg.ScryptCostN)
	users := NewUserDirectory(storages.UserRepository, credentials, logger)
	timetable := NewTimetableRegistry(storages.TimetableRepository, logger)
	lookups := NewLookupRegistry(storages.LookupRepository, logger)
	sessions := NewSessionService(cfg.TokenSignKey, cfg.TokenIssuer, logger)

	return &Services{
		Credentials:    credentials,
		Users:          users,
		Timetable:      timetable,
		Lookups:        lookups,
		Sessions:       sessions,
		Guard:          NewGuard(users, timetable, lookups, sessions, cfg.SessionDuration, logger),
		AppInfoService: NewAppInfoService(buildInfo, storages, logger),
		skipSeed:       cfg.SkipSeed,
		logger:         logger,
	}
}

// Bootstrap runs the one-time initialization: the default accounts and a
// lecturer-name entry for each default lecturer. Safe to repeat.
func (s *Services) Bootstrap(ctx context.Context) error {
	if s.skipSeed {
		s.logger.Info().Msg("seeding disabled")
		return nil
	}

	if _, err := s.Users.SeedDefaults(ctx); err != nil {
		return fmt.Errorf("error seeding default accounts: %w", err)
	}

	for _, account := range defaultAccounts {
		if account.Role != models.RoleLecturer {
			continue
		}
		if err := s.Lookups.EnsureLecturerName(ctx, account.Username); err != nil {
			return err
		}
	}
	return nil
}
