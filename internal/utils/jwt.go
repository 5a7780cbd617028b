// Package utils provides token issuing and password hashing helpers.
package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessToken is a signed HS256 JWT along with its expiry. The token
// carries the user's ID (sub) and email and is presented as a bearer
// token on every protected endpoint.
type AccessToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// NewAccessToken builds and signs an HS256 JWT for a user. The claims are
// sub (user ID), email, exp and iat; ttlHours controls the lifetime
// (24 hours in the default configuration).
func NewAccessToken(secret string, userID uint64, email string, ttlHours int) (AccessToken, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlHours) * time.Hour)
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"exp":   exp.Unix(),
		"iat":   now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}
