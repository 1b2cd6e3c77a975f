package http

import (
	"context"
	"net/http"
	"strings"

	"moto-rentals-backend/internal/logger"
	"moto-rentals-backend/internal/security"
)

// SessionTokenHeader carries the signed session handle in both directions.
const SessionTokenHeader = "X-Session-Token"

type contextKey string

const sessionIDKey contextKey = "session_id"

// RequireSession resolves the session handle into a session id on the request
// context. Missing or invalid handles answer 401.
func RequireSession(tokens security.TokenManager) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get(SessionTokenHeader))
			if raw == "" {
				writeError(w, r, security.ErrInvalidToken)
				return
			}
			claims, err := tokens.ValidateToken(raw)
			if err != nil {
				logger.DebugContext(r.Context(), "Session token rejected", "path", r.URL.Path, "error", err)
				writeError(w, r, err)
				return
			}
			ctx := context.WithValue(r.Context(), sessionIDKey, claims.SessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(sessionIDKey).(string)
	return id
}
