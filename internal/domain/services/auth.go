package services

import "context"

// ResourceAuthorizer checks if a user can access resources.
// Ownership based: a session belongs to the user who opened it.
type ResourceAuthorizer interface {
	// CanAccessSession returns domain.ErrNotFound when the session is
	// missing and domain.ErrForbidden when another user owns it
	CanAccessSession(ctx context.Context, userID, sessionID string) error
}
