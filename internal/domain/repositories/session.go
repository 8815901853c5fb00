package repositories

import (
	"context"
	"time"

	"elevatehub/internal/domain/models"
)

// SessionRepository stores chat sessions and their messages
type SessionRepository interface {
	// GetOrCreate returns the session with id, creating it for userID when
	// absent. created reports whether a new session was made. An existing
	// session has its updated_at refreshed.
	GetOrCreate(ctx context.Context, id, userID string) (session *models.Session, created bool, err error)

	// Get returns the session with its messages, or domain.ErrNotFound
	Get(ctx context.Context, id string) (*models.Session, error)

	// AddMessage appends a message and touches the session's updated_at
	AddMessage(ctx context.Context, sessionID string, msg *models.Message) error

	// UpdateContext replaces the session's context document
	UpdateContext(ctx context.Context, sessionID string, sessionCtx models.JSONMap) error

	// ListByUser returns the user's sessions, most recently updated first.
	// limit <= 0 returns all of them.
	ListByUser(ctx context.Context, userID string, limit int) ([]models.Session, error)

	// Delete removes the session only when owned by userID.
	// Returns domain.ErrNotFound when missing or owned by someone else.
	Delete(ctx context.Context, id, userID string) error

	// DeleteUpdatedBefore removes sessions idle since before cutoff
	DeleteUpdatedBefore(ctx context.Context, cutoff time.Time) (int, error)
}
