package http

import (
	"net/http"

	"github.com/MKhiriev/go-timetable/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

// health answers 503 when the database cannot be reached.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	health, err := h.services.AppInfoService.Health(r.Context())
	if err != nil {
		utils.WriteJSON(w, health, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, health, http.StatusOK)
}
