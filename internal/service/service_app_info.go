package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-timetable/internal/logger"
	"github.com/MKhiriev/go-timetable/models"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// AppInfoService exposes build metadata and liveness.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Health(ctx context.Context) (models.Health, error)
}

type appInfoService struct {
	buildInfo models.AppBuildInfo
	db        Pinger

	logger *logger.Logger
}

func NewAppInfoService(buildInfo models.AppBuildInfo, db Pinger, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		buildInfo: buildInfo,
		db:        db,
		logger:    logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.buildInfo.BuildVersion()
}

// Health pings the database. The returned value is filled in either case.
func (s *appInfoService) Health(ctx context.Context) (models.Health, error) {
	health := models.Health{Status: models.HealthOK, Version: s.buildInfo.BuildVersion()}

	if s.db == nil {
		return health, nil
	}
	if err := s.db.PingContext(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("database ping failed")
		health.Status = models.HealthUnavailable
		return health, fmt.Errorf("database unavailable: %w", err)
	}
	return health, nil
}
