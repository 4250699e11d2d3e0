package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-timetable/internal/logger"
	"github.com/MKhiriev/go-timetable/internal/utils"
	"github.com/MKhiriev/go-timetable/models"
)

// sessionService issues and parses HMAC-signed session tokens.
type sessionService struct {
	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	logger *logger.Logger
}

// NewSessionService constructs a [SessionService].
func NewSessionService(tokenSignKey, tokenIssuer string, logger *logger.Logger) SessionService {
	return &sessionService{
		tokenSignKey: tokenSignKey,
		tokenIssuer:  tokenIssuer,
		logger:       logger,
	}
}

// Issue signs p. The token expires at p.ExpiresAt.
func (s *sessionService) Issue(ctx context.Context, p models.Principal) (models.Token, error) {
	token, err := utils.GeneratePrincipalToken(s.tokenIssuer, p, s.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	return token, nil
}

// Parse validates tokenString. Every failure (expired, wrong issuer, bad
// signature, malformed) is reported as [ErrSessionExpiredOrInvalid].
func (s *sessionService) Parse(ctx context.Context, tokenString string) (models.Principal, error) {
	p, err := utils.ValidateAndParsePrincipalToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("session token rejected")
		return models.Anonymous, ErrSessionExpiredOrInvalid
	}
	return p, nil
}
