// Package token issues and verifies the short-lived signed session tokens
// that gate the protected routes.
package token

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature, wrong
// algorithm, malformed token, or expiry. Callers treat them all as
// unauthorized.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenTTL is the fixed lifetime of every issued token. There is no
// revocation list and no refresh mechanism: a leaked token stays valid for
// its full lifetime.
const TokenTTL = time.Hour

// Service signs and verifies HS256 session tokens with a single shared
// secret. It is a plain value, not a global: the secret is an explicit
// dependency.
type Service struct {
	secret []byte
	now    func() time.Time
}

// NewService creates a token Service for the given signing secret.
func NewService(secret string) *Service {
	return &Service{secret: []byte(secret), now: time.Now}
}

// Issue embeds the given claim object as-is, adds a 1-hour expiry, and
// returns the signed token string. Claim shapes are not validated; any JSON
// object is accepted.
func (s *Service) Issue(claims map[string]interface{}) (string, error) {
	mc := jwt.MapClaims{}
	for k, v := range claims {
		mc[k] = v
	}
	now := s.now()
	mc["iat"] = jwt.NewNumericDate(now)
	mc["exp"] = jwt.NewNumericDate(now.Add(TokenTTL))

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, mc)
	return tok.SignedString(s.secret)
}

// Verify validates signature and expiry and returns the decoded claims.
func (s *Service) Verify(tokenString string) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
