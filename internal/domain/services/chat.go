package services

import (
	"context"
	"time"

	"elevatehub/internal/domain/models"
)

// ChatService runs the conversation pipeline behind /chat
type ChatService interface {
	// SendMessage stores the user message, classifies it, generates a reply
	// and stores that too
	SendMessage(ctx context.Context, req *models.ChatRequest) (*models.ChatResponse, error)

	// QuickAction resolves a canned prompt and sends it as a message.
	// Unknown action ids return domain.ErrNotFound.
	QuickAction(ctx context.Context, req *models.QuickActionRequest) (*models.ChatResponse, error)

	ListUserSessions(ctx context.Context, userID string, limit int) ([]models.Session, error)
	GetHistory(ctx context.Context, sessionID string) (*models.SessionHistory, error)
	DeleteSession(ctx context.Context, sessionID, userID string) error

	// Cleanup removes sessions idle longer than retention
	Cleanup(ctx context.Context, retention time.Duration) (int, error)
}
