// Package middleware provides HTTP middleware for authentication and authorization.
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

// candidateIDKey is the context key for storing the authenticated candidate ID.
const candidateIDKey ContextKey = "candidateID"

// TokenValidator is an interface for validating JWT tokens.
// This allows the middleware to work with any JWT service implementation.
type TokenValidator interface {
	ValidateToken(tokenString string) (CandidateIDGetter, error)
}

// CandidateIDGetter is an interface for extracting the candidate ID from token claims.
type CandidateIDGetter interface {
	GetCandidateID() uuid.UUID
}

// AuthMiddleware creates middleware that validates JWT tokens and adds the candidate ID to the request context.
func AuthMiddleware(jwtService TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			// Parse Bearer token
			// Handle case-insensitive "Bearer" prefix
			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimSpace(parts[1])
			if tokenString == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := jwtService.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), candidateIDKey, claims.GetCandidateID())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetCandidateID extracts the authenticated candidate ID from the request context.
func GetCandidateID(r *http.Request) (uuid.UUID, error) {
	candidateID, ok := r.Context().Value(candidateIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, fmt.Errorf("candidate ID not found in request context")
	}
	return candidateID, nil
}

// CandidateIDKey returns the context key for the candidate ID (for testing purposes).
func CandidateIDKey() ContextKey {
	return candidateIDKey
}
