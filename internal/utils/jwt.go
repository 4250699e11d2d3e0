package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-timetable/models"
)

// GeneratePrincipalToken creates a signed HMAC-SHA256 JWT that carries p.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): p.ExpiresAt
//   - role: the principal's role
//
// Anonymous principals and principals without an expiry are rejected.
//
// Example usage:
//
//	token, err := utils.GeneratePrincipalToken("go-timetable", principal, "secret")
func GeneratePrincipalToken(issuer string, p models.Principal, signKey string) (models.Token, error) {
	if issuer == "" || signKey == "" || !p.Authenticated() || p.ExpiresAt.IsZero() {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	claims := &models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(p.UserID, 10),
			ExpiresAt: jwt.NewNumericDate(p.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		Role: p.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	// exp has second precision on the wire
	p.ExpiresAt = claims.ExpiresAt.Time
	return models.Token{SignedString: tokenString, Principal: p}, nil
}

// ValidateAndParsePrincipalToken validates tokenString and rebuilds the
// principal it carries.
//
// Validation includes signature verification with tokenSignKey, the issuer
// check against tokenIssuer, the exp check, and a known role.
//
// Example usage:
//
//	principal, err := utils.ValidateAndParsePrincipalToken(rawToken, "secret", "go-timetable")
//	if err != nil {
//	    // treat caller as anonymous
//	}
func ValidateAndParsePrincipalToken(tokenString, tokenSignKey, tokenIssuer string) (models.Principal, error) {
	claims := &models.SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.Principal{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userID, err := claims.UserID()
	if err != nil {
		return models.Principal{}, err
	}
	if userID == 0 || !claims.Role.Valid() {
		return models.Principal{}, errors.New("token carries no principal")
	}

	return models.Principal{
		UserID:    userID,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
