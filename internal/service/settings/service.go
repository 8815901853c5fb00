// Package settings stores per-user dashboard settings.
package settings

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"elevatehub/internal/config"
	"elevatehub/internal/domain"
	"elevatehub/internal/domain/models"
	"elevatehub/internal/domain/repositories"
	"elevatehub/internal/domain/services"
)

// Service implements the SettingsService interface
type Service struct {
	repo   repositories.SettingsRepository
	tx     repositories.TransactionManager
	logger *slog.Logger
}

// NewService creates a new settings service. Update runs under tx so
// concurrent partial updates for one user do not overwrite each other.
func NewService(repo repositories.SettingsRepository, tx repositories.TransactionManager, logger *slog.Logger) services.SettingsService {
	return &Service{
		repo:   repo,
		tx:     tx,
		logger: logger,
	}
}

func validateUserID(userID string) error {
	if err := validation.Validate(userID, validation.Required, validation.Length(1, config.MaxUserIDLength)); err != nil {
		return fmt.Errorf("%w: user_id: %v", domain.ErrValidation, err)
	}
	return nil
}

// stored returns the user's saved settings, or nil when none exist
func (s *Service) stored(ctx context.Context, userID string) (models.JSONMap, error) {
	saved, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	if saved == nil {
		s.logger.Debug("no settings found, returning defaults", "user_id", userID)
		return nil, nil
	}
	return saved.Settings, nil
}

// Get merges saved settings over the defaults
func (s *Service) Get(ctx context.Context, userID string) (models.JSONMap, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	saved, err := s.stored(ctx, userID)
	if err != nil {
		return nil, err
	}
	return models.MergeSettings(saved), nil
}

// Save persists settings verbatim and returns them merged over the defaults
func (s *Service) Save(ctx context.Context, userID string, settings models.JSONMap) (models.JSONMap, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, fmt.Errorf("%w: settings: cannot be blank", domain.ErrValidation)
	}

	if err := s.upsert(ctx, userID, settings.Clone()); err != nil {
		return nil, err
	}
	s.logger.Info("user settings saved", "user_id", userID, "keys", len(settings))
	return models.MergeSettings(settings), nil
}

// Update merges partial into the current settings. Keys absent from partial keep their value.
func (s *Service) Update(ctx context.Context, userID string, partial models.JSONMap) (models.JSONMap, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	var current models.JSONMap
	err := s.tx.ExecTx(ctx, func(ctx context.Context) error {
		saved, err := s.stored(ctx, userID)
		if err != nil {
			return err
		}
		current = models.MergeSettings(saved)
		for k, v := range partial {
			current[k] = v
		}
		return s.upsert(ctx, userID, current)
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("user settings updated", "user_id", userID, "changed", len(partial))
	return current.Clone(), nil
}

// Reset deletes stored settings
func (s *Service) Reset(ctx context.Context, userID string) (models.JSONMap, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, userID); err != nil {
		return nil, fmt.Errorf("delete settings: %w", err)
	}
	s.logger.Info("user settings reset", "user_id", userID)
	return models.DefaultSettings(), nil
}

func (s *Service) upsert(ctx context.Context, userID string, settings models.JSONMap) error {
	now := time.Now().UTC()
	if err := s.repo.Upsert(ctx, &models.UserSettings{
		UserID:    userID,
		Settings:  settings,
		CreatedAt: now,
		UpdatedAt: now,
	}); err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}
