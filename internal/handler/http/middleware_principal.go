package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-timetable/internal/logger"
	"github.com/MKhiriev/go-timetable/internal/utils"
)

// withPrincipal resolves the caller's principal from the Authorization
// header or, when absent, from the session cookie. Requests without a valid
// token continue as anonymous; the guard decides what they may do.
func (h *Handler) withPrincipal(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := h.sessionToken(r)
		if tokenString == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		principal, err := h.services.Sessions.Parse(ctx, tokenString)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Msg("continuing as anonymous")
			next.ServeHTTP(w, r)
			return
		}

		ctx = utils.WithPrincipal(ctx, principal)
		ctx = logger.WithFields(ctx, map[string]string{
			"user_id":   strconv.FormatInt(principal.UserID, 10),
			"user_role": string(principal.Role),
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) sessionToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		token, err := utils.ParseBearerToken(header)
		if err != nil {
			return ""
		}
		return token
	}

	// a tampered or stale cookie yields a fresh empty session
	session, _ := h.cookies.Get(r, sessionCookieName)
	if session == nil {
		return ""
	}
	token, _ := session.Values[sessionTokenKey].(string)
	return token
}
