package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-timetable/internal/logger"
	"github.com/MKhiriev/go-timetable/models"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

// ─────────────────────────────────────────────
// GetAppVersion
// ─────────────────────────────────────────────

func TestGetAppVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    string
	}{
		{name: "set version", version: "1.4.0", want: "1.4.0"},
		{name: "empty version", version: "", want: "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAppInfoService(models.NewAppBuildInfo(tt.version, "", ""), nil, logger.Nop())

			assert.Equal(t, tt.want, svc.GetAppVersion(context.Background()))
		})
	}
}

// ─────────────────────────────────────────────
// Health
// ─────────────────────────────────────────────

func TestHealth_DatabaseReachable(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("1.0.0", "", ""),
		pingerFunc(func(context.Context) error { return nil }), logger.Nop())

	health, err := svc.Health(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.Health{Status: models.HealthOK, Version: "1.0.0"}, health)
}

func TestHealth_DatabaseUnreachable(t *testing.T) {
	pingErr := errors.New("connection refused")
	svc := NewAppInfoService(models.NewAppBuildInfo("1.0.0", "", ""),
		pingerFunc(func(context.Context) error { return pingErr }), logger.Nop())

	health, err := svc.Health(context.Background())

	require.ErrorIs(t, err, pingErr)
	assert.Equal(t, models.HealthUnavailable, health.Status)
	assert.Equal(t, "1.0.0", health.Version)
}

func TestHealth_NoDatabase(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("1.0.0", "", ""), nil, logger.Nop())

	health, err := svc.Health(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.HealthOK, health.Status)
}
