package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/workplacehq/workplace/internal/domain"
	"github.com/workplacehq/workplace/internal/service"
)

// TokenVerifier checks a bearer token signature and expiry and returns its
// claims.
type TokenVerifier interface {
	VerifyAuthToken(token string) (*service.AuthTokenClaims, error)
}

// AuthMiddleware extracts the bearer token, verifies it and places the user
// and session IDs in the request context. Session liveness is checked by the
// service layer on first use, so a revoked session fails even while its
// token is still within its expiry window.
type AuthMiddleware struct {
	verifier TokenVerifier
}

func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// RequireAuth wraps a handler with bearer token authentication
func (m *AuthMiddleware) RequireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header is required", http.StatusUnauthorized)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "Invalid authorization header format", http.StatusUnauthorized)
				return
			}

			claims, err := m.verifier.VerifyAuthToken(parts[1])
			if err != nil {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), domain.UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, domain.SessionIDKey, claims.SessionID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
