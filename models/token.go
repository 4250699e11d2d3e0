package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the claim set of a session token.
// The subject carries the user id; Role carries the principal's role.
type SessionClaims struct {
	jwt.RegisteredClaims
	Role Role `json:"role"`
}

// UserID parses the subject claim as a base-10 int64.
func (c *SessionClaims) UserID() (int64, error) {
	sub, err := c.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting subject from token: %w", err)
	}

	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting subject to user id: %w", err)
	}

	return id, nil
}

// Token wraps a signed session token together with the principal it encodes.
type Token struct {
	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Principal is the identity carried by the token.
	Principal Principal `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
