package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-timetable/internal/logger"
	"github.com/MKhiriev/go-timetable/internal/service"
	"github.com/MKhiriev/go-timetable/internal/store"
	"github.com/MKhiriev/go-timetable/internal/utils"
	"github.com/MKhiriev/go-timetable/internal/validators"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: username is required", service.ErrValidation), http.StatusBadRequest},
		{fmt.Errorf("%w: role", validators.ErrInvalidRequest), http.StatusBadRequest},
		{utils.ErrInvalidJSONBody, http.StatusBadRequest},
		{ErrInvalidUserID, http.StatusBadRequest},
		{service.ErrInvalidCredentials, http.StatusUnauthorized},
		{service.ErrUnauthenticated, http.StatusUnauthorized},
		{service.ErrSessionExpiredOrInvalid, http.StatusUnauthorized},
		{service.ErrForbidden, http.StatusForbidden},
		{service.ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("wrapped: %w", service.ErrDuplicateUsername), http.StatusConflict},
		{service.ErrDuplicateSchoolNumber, http.StatusConflict},
		{service.ErrDuplicateName, http.StatusConflict},
		{service.ErrTokenCreationFailed, http.StatusInternalServerError},
		{store.ErrExecutingQuery, http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestWriteError_HidesInternalDetails(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(logger.Nop().WithContext(req.Context()))
	rec := httptest.NewRecorder()

	writeError(rec, req, fmt.Errorf("%w: connection refused", store.ErrExecutingQuery))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"internal server error"}`, rec.Body.String())
}

func TestWriteError_ExposesClientErrors(t *testing.T) {
	rec := httptest.NewRecorder()

	writeError(rec, httptest.NewRequest(http.MethodGet, "/", nil), service.ErrForbidden)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"message":"forbidden"}`, rec.Body.String())
}
