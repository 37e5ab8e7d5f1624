// Package jwt inspects bearer tokens issued by the remote authority.
// The client never verifies signatures (it has no key material); it only
// reads registered claims to reason about a persisted session.
package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo is the subset of claims the client cares about
type TokenInfo struct {
	Subject   string
	ExpiresAt time.Time
	IssuedAt  time.Time
}

// Inspect parses a token without verifying it and extracts its registered
// claims. Returns an error for tokens that are not structurally JWTs.
func Inspect(tokenString string) (*TokenInfo, error) {
	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, &claims); err != nil {
		return nil, err
	}

	info := &TokenInfo{Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	if claims.IssuedAt != nil {
		info.IssuedAt = claims.IssuedAt.Time
	}
	return info, nil
}

// Expired reports whether the token carries an exp claim in the past.
// Tokens without an exp claim are treated as non-expiring.
func (t *TokenInfo) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && t.ExpiresAt.Before(now)
}
