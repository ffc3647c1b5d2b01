package server

import (
	"context"
	"net/http"
	"strings"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// ContextKeyUsername stores the authenticated username
	ContextKeyUsername ContextKey = "username"
	// ContextKeyRoles stores the roles carried by the access token
	ContextKeyRoles ContextKey = "roles"
)

// RequireAuth is middleware that validates a Bearer access token. Expired
// tokens are rejected here: only Refresh accepts a stale token, and it does
// its own validation.
func (s *Server) RequireAuth() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			claimSet, err := s.issuer.ValidateAndExtract(parts[1], false)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUsername, claimSet.Username)
			ctx = context.WithValue(ctx, ContextKeyRoles, claimSet.Roles)
			next(w, r.WithContext(ctx))
		}
	}
}
