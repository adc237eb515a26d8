package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/tellis/tellis-go/internal/crypto"
	"github.com/tellis/tellis-go/internal/model"
	"github.com/tellis/tellis-go/internal/session"
	"github.com/tellis/tellis-go/internal/token"
)

type contextKey string

const (
	userIDKey  contextKey = "userID"
	tokenIDKey contextKey = "tokenID"
)

// CookieAuth returns the auth gate: it reads the session cookie, verifies the
// token, and attaches the authenticated identity to the request context.
// No cookie, an invalid/expired token, or a revoked token short-circuits with
// 401 before any downstream handler runs. Verification does no storage I/O;
// the deny-list lives in process memory.
func CookieAuth(secret string, denylist *token.Denylist) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := session.Read(r)
			if raw == "" {
				writeUnauthorized(w, "Unauthorized: No token provided")
				return
			}

			claims, err := crypto.ValidateToken(raw, secret)
			if err != nil {
				writeUnauthorized(w, "Unauthorized: Invalid or expired token")
				return
			}

			if denylist.Revoked(claims.ID) {
				writeUnauthorized(w, "Unauthorized: Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID())
			ctx = context.WithValue(ctx, tokenIDKey, claims.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext extracts the authenticated user id from the request
// context. Downstream handlers must treat it as the sole source of identity
// and never trust a client-supplied user id.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// TokenIDFromContext extracts the verified token's jti, used by logout to
// revoke it.
func TokenIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(tokenIDKey).(string)
	return id, ok
}

func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(model.Response{
		Success: false,
		Message: msg,
		Data:    struct{}{},
	})
}
