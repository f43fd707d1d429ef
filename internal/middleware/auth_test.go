package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/crisisconnect/backend/internal/auth"
)

func gatedHandler(t *testing.T, tokens *auth.TokenManager, invoked *bool) http.Handler {
	t.Helper()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*invoked = true
		id, ok := UserID(r.Context())
		if !ok {
			t.Error("expected user id on request context")
		}
		w.Write([]byte(id))
	})
	return Authenticator(tokens)(next)
}

func TestAuthenticatorMissingToken(t *testing.T) {
	tokens := auth.NewTokenManager([]byte("test-secret"), time.Hour)
	invoked := false
	h := gatedHandler(t, tokens, &invoked)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
	if invoked {
		t.Fatal("downstream handler must not run without a token")
	}
}

func TestAuthenticatorTamperedToken(t *testing.T) {
	tokens := auth.NewTokenManager([]byte("test-secret"), time.Hour)
	invoked := false
	h := gatedHandler(t, tokens, &invoked)

	token, err := tokens.Issue("user-42")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token+"x")
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)

	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.Code)
	}
	if invoked {
		t.Fatal("downstream handler must not run with a tampered token")
	}
}

func TestAuthenticatorValidToken(t *testing.T) {
	tokens := auth.NewTokenManager([]byte("test-secret"), time.Hour)
	invoked := false
	h := gatedHandler(t, tokens, &invoked)

	token, err := tokens.Issue("user-42")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !invoked {
		t.Fatal("downstream handler should have run")
	}
	if resp.Body.String() != "user-42" {
		t.Fatalf("expected user-42 on context, got %q", resp.Body.String())
	}
}

func TestAuthenticatorMalformedHeader(t *testing.T) {
	tokens := auth.NewTokenManager([]byte("test-secret"), time.Hour)
	invoked := false
	h := gatedHandler(t, tokens, &invoked)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
	if invoked {
		t.Fatal("downstream handler must not run with a non-bearer header")
	}
}

func TestUserIDAbsent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := UserID(req.Context()); ok {
		t.Fatal("expected no user id on a fresh context")
	}
}
