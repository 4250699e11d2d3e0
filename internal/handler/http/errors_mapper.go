package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-timetable/internal/app"
	"github.com/MKhiriev/go-timetable/internal/logger"
	"github.com/MKhiriev/go-timetable/internal/service"
	"github.com/MKhiriev/go-timetable/internal/utils"
	"github.com/MKhiriev/go-timetable/internal/validators"
	"github.com/MKhiriev/go-timetable/models"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:        http.StatusBadRequest,
	validators.ErrInvalidRequest: http.StatusBadRequest,
	utils.ErrInvalidJSONBody:     http.StatusBadRequest,
	ErrInvalidUserID:             http.StatusBadRequest,

	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrUnauthenticated:         http.StatusUnauthorized,
	service.ErrSessionExpiredOrInvalid: http.StatusUnauthorized,

	service.ErrForbidden: http.StatusForbidden,
	service.ErrNotFound:  http.StatusNotFound,

	service.ErrDuplicateUsername:     http.StatusConflict,
	service.ErrDuplicateSchoolNumber: http.StatusConflict,
	service.ErrDuplicateName:         http.StatusConflict,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError replies with the mapped status and a JSON message. Internal
// errors are logged and their text is not sent to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg("request failed")
		message = app.MsgInternalServerError
	}

	utils.WriteJSON(w, models.MessageResponse{Message: message}, status)
}
