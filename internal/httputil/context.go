package httputil

import (
	"context"
	"net/http"
)

// Context key type to avoid collisions
type contextKey string

const (
	userIDKey contextKey = "userID"
)

// WithUserID attaches the authenticated user to the request context
func WithUserID(r *http.Request, userID string) *http.Request {
	ctx := context.WithValue(r.Context(), userIDKey, userID)
	return r.WithContext(ctx)
}

// UserID returns the authenticated user, or "" for anonymous requests
func UserID(r *http.Request) string {
	userID, _ := r.Context().Value(userIDKey).(string)
	return userID
}

// ResolveUserID prefers the authenticated user over the one a client claims
func ResolveUserID(r *http.Request, claimed string) string {
	if id := UserID(r); id != "" {
		return id
	}
	return claimed
}
