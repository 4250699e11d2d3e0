package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-timetable/internal/app"
	"github.com/MKhiriev/go-timetable/internal/logger"
	"github.com/MKhiriev/go-timetable/internal/utils"
	"github.com/MKhiriev/go-timetable/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.Guard.Register(r.Context(), req.Username, req.Password, req.SchoolNumber)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusCreated)
}

// login issues a session token. It is returned in the body and in the
// Authorization header, and stored in the session cookie for browsers.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.Guard.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		log.Info().Str("username", req.Username).Err(err).Msg("login rejected")
		writeError(w, r, err)
		return
	}

	session, _ := h.cookies.Get(r, sessionCookieName)
	session.Values[sessionTokenKey] = token.String()
	if err = session.Save(r, w); err != nil {
		writeError(w, r, fmt.Errorf("error saving session cookie: %w", err))
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.String()))
	utils.WriteJSON(w, models.LoginResponse{
		UserID: token.Principal.UserID,
		Role:   token.Principal.Role,
		Token:  token.String(),
	}, http.StatusOK)
}

// logout drops the session cookie. Bearer tokens stay valid until they
// expire.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.services.Guard.Logout(r.Context(), utils.GetPrincipalFromContext(r.Context()))

	session, _ := h.cookies.Get(r, sessionCookieName)
	delete(session.Values, sessionTokenKey)
	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		writeError(w, r, fmt.Errorf("error clearing session cookie: %w", err))
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgLoggedOut}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.Guard.WhoAmI(r.Context(), utils.GetPrincipalFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.services.Guard.Dashboard(r.Context(), utils.GetPrincipalFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, dashboard, http.StatusOK)
}
