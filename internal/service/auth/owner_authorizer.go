package auth

import (
	"context"
	"fmt"

	"elevatehub/internal/domain"
	"elevatehub/internal/domain/repositories"
	"elevatehub/internal/domain/services"
)

// OwnerBasedAuthorizer implements ResourceAuthorizer using ownership checks.
// A user can access a session if they opened it.
type OwnerBasedAuthorizer struct {
	sessions repositories.SessionRepository
}

// NewOwnerBasedAuthorizer creates a new ownership-based authorizer
func NewOwnerBasedAuthorizer(sessions repositories.SessionRepository) services.ResourceAuthorizer {
	return &OwnerBasedAuthorizer{sessions: sessions}
}

// CanAccessSession checks if user owns the session
func (a *OwnerBasedAuthorizer) CanAccessSession(ctx context.Context, userID, sessionID string) error {
	session, err := a.sessions.Get(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("get session for auth: %w", err)
	}
	if session.UserID != userID {
		return fmt.Errorf("access denied to session %s: %w", sessionID, domain.ErrForbidden)
	}
	return nil
}
