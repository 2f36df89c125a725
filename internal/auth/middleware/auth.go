package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/skillstream/backend/internal/auth/service"
)

type contextKey string

const sessionKey contextKey = "session"

const unauthorizedBody = `{"error":true,"message":"authentication required","code":"UNAUTHORIZED"}`

// AuthMiddleware validates the JWT access token and stores the session identity in context
func AuthMiddleware(tokenGenerator *service.TokenGenerator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)

			// If no token found, return 401
			if token == "" {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(unauthorizedBody))
				return
			}

			// Validate token and extract session identity
			session, err := tokenGenerator.ValidateAccessToken(token)
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(unauthorizedBody))
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuthMiddleware stores the session in context when a valid token is present
// but lets anonymous requests through. Used by catalog endpoints that personalize
// responses for signed-in users.
func OptionalAuthMiddleware(tokenGenerator *service.TokenGenerator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token != "" {
				if session, err := tokenGenerator.ValidateAccessToken(token); err == nil {
					r = r.WithContext(context.WithValue(r.Context(), sessionKey, session))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractToken pulls the access token from the Authorization header or cookie
func extractToken(r *http.Request) string {
	// Try Authorization header first
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		// Expected format: "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			return parts[1]
		}
	}

	// If not in header, try cookie
	cookie, err := r.Cookie("access_token")
	if err == nil {
		return cookie.Value
	}

	return ""
}

// GetSession retrieves the session identity from context
func GetSession(ctx context.Context) (*service.Session, bool) {
	session, ok := ctx.Value(sessionKey).(*service.Session)
	return session, ok
}

// GetUserID retrieves the user ID from context
func GetUserID(ctx context.Context) (int, bool) {
	session, ok := GetSession(ctx)
	if !ok {
		return 0, false
	}
	return session.UserID, true
}
