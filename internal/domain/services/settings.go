package services

import (
	"context"

	"elevatehub/internal/domain/models"
)

// SettingsService manages per-user application settings
type SettingsService interface {
	// Get returns stored settings merged over the defaults
	Get(ctx context.Context, userID string) (models.JSONMap, error)

	// Save persists the full settings object verbatim
	Save(ctx context.Context, userID string, settings models.JSONMap) (models.JSONMap, error)

	// Update merges partial values into the current settings
	Update(ctx context.Context, userID string, partial models.JSONMap) (models.JSONMap, error)

	// Reset discards stored settings and returns the defaults
	Reset(ctx context.Context, userID string) (models.JSONMap, error)
}
