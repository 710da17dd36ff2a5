package utils

import (
	"errors"
	"testing"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	t.Parallel()

	sid, err := NewSessionID()
	if err != nil {
		t.Fatalf("NewSessionID failed: %v", err)
	}
	if len(sid) != 32 {
		t.Fatalf("expected 32-char hex session ID, got %q", sid)
	}

	token, err := NewSessionToken("secret", sid)
	if err != nil {
		t.Fatalf("NewSessionToken failed: %v", err)
	}
	got, err := ParseSessionToken("secret", token)
	if err != nil {
		t.Fatalf("ParseSessionToken failed: %v", err)
	}
	if got != sid {
		t.Fatalf("expected session %q back, got %q", sid, got)
	}
}

func TestSessionTokenRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	token, err := NewSessionToken("secret-a", "abc123")
	if err != nil {
		t.Fatalf("NewSessionToken failed: %v", err)
	}
	if _, err := ParseSessionToken("secret-b", token); !errors.Is(err, ErrInvalidSessionToken) {
		t.Fatalf("expected ErrInvalidSessionToken, got %v", err)
	}
}

func TestSessionTokenRejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, err := ParseSessionToken("secret", "not.a.jwt"); !errors.Is(err, ErrInvalidSessionToken) {
		t.Fatalf("expected ErrInvalidSessionToken, got %v", err)
	}
}
