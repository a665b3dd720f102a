package redis

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/repairworks/backoffice/internal/core/domain"
)

func signedToken(t *testing.T, secret string, claims jwt.MapClaims, method jwt.SigningMethod) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestSessionStore_SessionID_Valid(t *testing.T) {
	store := NewSessionStore(nil, "secret", time.Hour)
	token := signedToken(t, "secret", jwt.MapClaims{
		"sid": "abc123",
		"exp": time.Now().Add(time.Hour).Unix(),
	}, jwt.SigningMethodHS256)

	sid, err := store.sessionID(token)
	if err != nil {
		t.Fatalf("sessionID failed: %v", err)
	}
	if sid != "abc123" {
		t.Fatalf("expected sid abc123, got %q", sid)
	}
}

func TestSessionStore_SessionID_WrongSecret(t *testing.T) {
	store := NewSessionStore(nil, "secret", time.Hour)
	token := signedToken(t, "other-secret", jwt.MapClaims{
		"sid": "abc123",
		"exp": time.Now().Add(time.Hour).Unix(),
	}, jwt.SigningMethodHS256)

	if _, err := store.sessionID(token); err != domain.ErrNoSession {
		t.Fatalf("expected ErrNoSession for tampered token, got %v", err)
	}
}

func TestSessionStore_SessionID_Expired(t *testing.T) {
	store := NewSessionStore(nil, "secret", time.Hour)
	token := signedToken(t, "secret", jwt.MapClaims{
		"sid": "abc123",
		"exp": time.Now().Add(-time.Minute).Unix(),
	}, jwt.SigningMethodHS256)

	if _, err := store.sessionID(token); err != domain.ErrNoSession {
		t.Fatalf("expected ErrNoSession for expired token, got %v", err)
	}
}

func TestSessionStore_SessionID_MissingSid(t *testing.T) {
	store := NewSessionStore(nil, "secret", time.Hour)
	token := signedToken(t, "secret", jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}, jwt.SigningMethodHS256)

	if _, err := store.sessionID(token); err != domain.ErrNoSession {
		t.Fatalf("expected ErrNoSession for token without sid, got %v", err)
	}
}

func TestSessionStore_SessionID_Garbage(t *testing.T) {
	store := NewSessionStore(nil, "secret", time.Hour)

	if _, err := store.sessionID("not-a-token"); err != domain.ErrNoSession {
		t.Fatalf("expected ErrNoSession for garbage token, got %v", err)
	}
}
