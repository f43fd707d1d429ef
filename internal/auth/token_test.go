package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestIssueAndVerifyRoundtrip(t *testing.T) {
	tokens := NewTokenManager([]byte("test-secret"), time.Hour)

	token, err := tokens.Issue("user-42")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	userID, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if userID != "user-42" {
		t.Fatalf("expected user-42, got %q", userID)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	tokens := NewTokenManager([]byte("test-secret"), -time.Minute)

	token, err := tokens.Issue("user-42")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := tokens.Verify(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerifyTamperedToken(t *testing.T) {
	tokens := NewTokenManager([]byte("test-secret"), time.Hour)

	token, err := tokens.Issue("user-42")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	// Flip a byte in the signature segment.
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", token)
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := tokens.Verify(tampered); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := NewTokenManager([]byte("secret-a"), time.Hour).Issue("user-42")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := NewTokenManager([]byte("secret-b"), time.Hour).Verify(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerifyMalformedToken(t *testing.T) {
	tokens := NewTokenManager([]byte("test-secret"), time.Hour)
	if _, err := tokens.Verify("not-a-token"); !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestIssueWithoutExpiry(t *testing.T) {
	tokens := NewTokenManager([]byte("test-secret"), 0)

	token, err := tokens.Issue("user-42")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, err := tokens.Verify(token); err != nil {
		t.Fatalf("expected token without expiry to verify, got %v", err)
	}
}
