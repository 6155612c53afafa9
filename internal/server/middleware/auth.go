// Package middleware provides HTTP middleware for recruiter authentication.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// recruiterIDKey is the context key for the authenticated recruiter ID.
const recruiterIDKey ContextKey = "recruiterID"

// TokenValidator validates a bearer token and yields its claims.
type TokenValidator interface {
	ValidateToken(tokenString string) (RecruiterIDGetter, error)
}

// RecruiterIDGetter extracts the recruiter ID from token claims.
type RecruiterIDGetter interface {
	GetRecruiterID() uuid.UUID
}

// Auth returns middleware that requires a valid bearer token and puts the
// recruiter ID on the request context.
func Auth(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			// "Bearer" prefix is case-insensitive
			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := validator.ValidateToken(parts[1])
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), recruiterIDKey, claims.GetRecruiterID())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetRecruiterID extracts the authenticated recruiter ID from the request
// context.
func GetRecruiterID(r *http.Request) (uuid.UUID, error) {
	id, ok := r.Context().Value(recruiterIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, fmt.Errorf("recruiter ID not found in request context")
	}
	return id, nil
}

// RecruiterIDKey returns the context key for the recruiter ID (for tests).
func RecruiterIDKey() ContextKey {
	return recruiterIDKey
}
