package utils // package utils provides helpers for session token creation and parsing

import (
	"crypto/rand" // secure random number generation for session IDs
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// ErrInvalidSessionToken is returned when a presented token fails signature
// or claim validation.  Callers respond by minting a fresh session rather
// than rejecting the request; there is nothing for an anonymous visitor to
// be unauthorized about.
var ErrInvalidSessionToken = errors.New("invalid session token")

// NewSessionID returns a random 32-character hex string identifying one
// visitor session.  Sessions are anonymous; the ID only scopes a cart, its
// in-progress selections and the pending handoff slot.
func NewSessionID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// NewSessionToken builds and signs an HS256 JWT wrapping the session ID.
// The JWT carries the session ID as sid plus an issued-at claim.  Tokens do
// not expire: a session lives as long as the visitor keeps presenting its
// token, mirroring how the storefront kept one cart per browser.
func NewSessionToken(secret, sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"sid": sessionID,
		"iat": time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// ParseSessionToken verifies the signature and extracts the session ID.  Any
// failure — wrong algorithm, bad signature, missing sid — yields
// ErrInvalidSessionToken.
func ParseSessionToken(secret, raw string) (string, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSessionToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return "", ErrInvalidSessionToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidSessionToken
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", ErrInvalidSessionToken
	}
	return sid, nil
}
