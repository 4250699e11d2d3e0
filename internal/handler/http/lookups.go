package http

import (
	"net/http"

	"github.com/MKhiriev/go-timetable/internal/utils"
	"github.com/MKhiriev/go-timetable/models"
)

func (h *Handler) listBatches(w http.ResponseWriter, r *http.Request) {
	batches, err := h.services.Guard.ListBatches(r.Context(), utils.GetPrincipalFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, batches, http.StatusOK)
}

func (h *Handler) addBatch(w http.ResponseWriter, r *http.Request) {
	var req models.NameRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	batch, err := h.services.Guard.AddBatch(r.Context(), utils.GetPrincipalFromContext(r.Context()), req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, batch, http.StatusCreated)
}

func (h *Handler) listLecturerNames(w http.ResponseWriter, r *http.Request) {
	lecturers, err := h.services.Guard.ListLecturerNames(r.Context(), utils.GetPrincipalFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, lecturers, http.StatusOK)
}

func (h *Handler) addLecturerName(w http.ResponseWriter, r *http.Request) {
	var req models.NameRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	lecturer, err := h.services.Guard.AddLecturerName(r.Context(), utils.GetPrincipalFromContext(r.Context()), req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, lecturer, http.StatusCreated)
}
