package http

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/MKhiriev/go-timetable/internal/config"
	"github.com/MKhiriev/go-timetable/internal/logger"
	"github.com/MKhiriev/go-timetable/internal/service"
	"github.com/MKhiriev/go-timetable/internal/utils"
	"github.com/MKhiriev/go-timetable/internal/validators"
)

const (
	// sessionCookieName is the name of the signed browser session cookie.
	sessionCookieName = "timetable_session"
	// sessionTokenKey is the session value holding the signed token.
	sessionTokenKey = "token"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator
	cookies   *sessions.CookieStore
	traceIDs  *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	cookies := sessions.NewCookieStore([]byte(cfg.TokenSignKey))
	cookies.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.SessionDuration.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validators.NewRequestValidator(),
		cookies:   cookies,
		traceIDs:  utils.NewUUIDGenerator(),
		logger:    logger,
	}
}

// decode reads a JSON body into dst and validates it.
func (h *Handler) decode(r *http.Request, dst any) error {
	if err := utils.ReadJSON(r, dst); err != nil {
		return err
	}
	return h.validator.Validate(r.Context(), dst)
}
