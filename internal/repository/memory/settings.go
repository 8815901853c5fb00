package memory

import (
	"context"

	"elevatehub/internal/domain/models"
	"elevatehub/internal/domain/repositories"
)

type settingsRecord struct {
	settings models.UserSettings
}

// SettingsRepository implements the SettingsRepository interface in memory
type SettingsRepository struct {
	store *Store
}

// NewSettingsRepository creates a settings repository over store
func NewSettingsRepository(store *Store) repositories.SettingsRepository {
	return &SettingsRepository{store: store}
}

// Get returns nil, nil when nothing was saved
func (r *SettingsRepository) Get(_ context.Context, userID string) (*models.UserSettings, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rec, ok := r.store.settings[userID]
	if !ok {
		return nil, nil
	}
	s := rec.settings
	s.Settings = rec.settings.Settings.Clone()
	return &s, nil
}

// Upsert stores a copy; created_at survives replacement
func (r *SettingsRepository) Upsert(_ context.Context, s *models.UserSettings) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored := *s
	stored.Settings = s.Settings.Clone()
	if existing, ok := r.store.settings[s.UserID]; ok {
		stored.CreatedAt = existing.settings.CreatedAt
		s.CreatedAt = stored.CreatedAt
	}
	r.store.settings[s.UserID] = &settingsRecord{settings: stored}
	return nil
}

// Delete removes the user's settings
func (r *SettingsRepository) Delete(_ context.Context, userID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.settings, userID)
	return nil
}
