package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-timetable/internal/utils"
	"github.com/MKhiriev/go-timetable/models"
)

func (h *Handler) listTimetable(w http.ResponseWriter, r *http.Request) {
	entries, err := h.services.Guard.ListAllTimetableEntries(r.Context(), utils.GetPrincipalFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) addTimetableEntry(w http.ResponseWriter, r *http.Request) {
	var req models.AddTimetableEntryRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	entry, err := h.services.Guard.AddTimetableEntry(r.Context(), utils.GetPrincipalFromContext(r.Context()), models.TimetableEntry{
		Day:     req.Day,
		Batch:   req.Batch,
		Subject: req.Subject,
		Lecture: req.Lecture,
		Room:    req.Room,
		Time:    req.Time,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, entry, http.StatusCreated)
}

func (h *Handler) timetableForm(w http.ResponseWriter, r *http.Request) {
	form, err := h.services.Guard.TimetableForm(r.Context(), utils.GetPrincipalFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, form, http.StatusOK)
}

// ownTimetable lists the entries of the logged-in lecturer.
func (h *Handler) ownTimetable(w http.ResponseWriter, r *http.Request) {
	entries, err := h.services.Guard.ListOwnTimetableEntries(r.Context(), utils.GetPrincipalFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) lecturerTimetable(w http.ResponseWriter, r *http.Request) {
	entries, err := h.services.Guard.ListTimetableEntriesForLecturer(r.Context(),
		utils.GetPrincipalFromContext(r.Context()), chi.URLParam(r, "username"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}
