package repositories

import (
	"context"

	"elevatehub/internal/domain/models"
)

// SettingsRepository stores per-user settings documents
type SettingsRepository interface {
	// Get returns nil, nil when the user has never saved settings
	Get(ctx context.Context, userID string) (*models.UserSettings, error)

	// Upsert creates or replaces the user's settings
	Upsert(ctx context.Context, settings *models.UserSettings) error

	// Delete removes stored settings; deleting nothing is not an error
	Delete(ctx context.Context, userID string) error
}
