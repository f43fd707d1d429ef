package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/crisisconnect/backend/internal/auth"
	"github.com/crisisconnect/backend/pkg/utils"
)

// contextKey is unexported so only this package can set the user
// identity on a request context.
type contextKey struct{}

var userIDKey contextKey

// UserID returns the authenticated user identifier the gate attached to
// ctx, if any.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// Authenticator gates protected routes behind bearer-token verification.
// A missing token yields 401, a failed verification 403; the downstream
// handler only ever runs with a verified identity on the context.
func Authenticator(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				utils.RespondError(w, http.StatusUnauthorized, "no token provided")
				return
			}

			userID, err := tokens.Verify(token)
			if err != nil {
				log.Printf("[auth] token verification failed: %v", err)
				utils.RespondError(w, http.StatusForbidden, "failed to authenticate token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
