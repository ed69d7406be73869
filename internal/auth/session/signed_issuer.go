package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SignedIssuer mints HMAC-signed tokens carrying the verified subject, so the
// cookie value can be authenticated without a server-side record.
type SignedIssuer struct {
	key []byte
	ttl time.Duration
}

// NewSignedIssuer creates an issuer signing with the given key. Tokens expire
// with the cookie.
func NewSignedIssuer(key string, ttl time.Duration) (*SignedIssuer, error) {
	if key == "" {
		return nil, errors.New("signing key must not be empty")
	}
	return &SignedIssuer{
		key: []byte(key),
		ttl: ttl,
	}, nil
}

// Issue returns a signed token with the subject and expiry claims.
func (i *SignedIssuer) Issue(_ context.Context, sub string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": sub,
		"iat": now.Unix(),
		"exp": now.Add(i.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Revoke is a no-op; signed tokens are stateless and expire on their own.
func (i *SignedIssuer) Revoke(_ context.Context, _ string) error {
	return nil
}

// Subject parses and verifies a previously issued token and returns its
// subject claim.
func (i *SignedIssuer) Subject(value string) (string, error) {
	token, err := jwt.Parse(value, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.key, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid session token")
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", errors.New("session token missing subject")
	}
	return sub, nil
}
