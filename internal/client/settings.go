package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"elevatehub/internal/domain/models"
)

// SettingsContext holds the user's settings and their unsaved state
type SettingsContext struct {
	store  KV
	logger *slog.Logger

	mu        sync.Mutex
	settings  models.JSONMap
	unsaved   bool
	version   uint64 // bumped by every Update
	listeners []func(models.JSONMap)
}

// NewSettingsContext starts from the defaults. Call Load to read saved values.
func NewSettingsContext(store KV, logger *slog.Logger) *SettingsContext {
	return &SettingsContext{
		store:    store,
		logger:   logger,
		settings: models.DefaultSettings(),
	}
}

// Load merges stored settings over the defaults. Undecodable data is
// logged and the defaults are kept.
func (s *SettingsContext) Load(ctx context.Context) error {
	raw, ok, err := s.store.Get(ctx, models.SettingsStorageKey)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	merged := models.DefaultSettings()
	if ok {
		var saved models.JSONMap
		if err := json.Unmarshal([]byte(raw), &saved); err != nil {
			s.logger.Warn("failed to load settings", "error", err)
		} else {
			merged = models.MergeSettings(saved)
		}
	}

	s.mu.Lock()
	s.settings = merged
	s.unsaved = false
	s.mu.Unlock()
	return nil
}

// Settings returns a copy of the current values
func (s *SettingsContext) Settings() models.JSONMap {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings.Clone()
}

func (s *SettingsContext) Get(key string) (interface{}, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.settings[key]
	return v, ok
}

// Update changes one value in memory
func (s *SettingsContext) Update(key string, value interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings[key] = value
	s.unsaved = true
	s.version++
}

func (s *SettingsContext) HasUnsavedChanges() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unsaved
}

// OnSaved registers fn to run after every successful Save
func (s *SettingsContext) OnSaved(fn func(models.JSONMap)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Save writes the full settings object and notifies OnSaved listeners.
// Updates made while the write is in flight stay unsaved.
func (s *SettingsContext) Save(ctx context.Context) error {
	s.mu.Lock()
	snapshot := s.settings.Clone()
	version := s.version
	s.mu.Unlock()

	raw, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := s.store.Set(ctx, models.SettingsStorageKey, string(raw)); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	s.mu.Lock()
	if s.version == version {
		s.unsaved = false
	}
	listeners := make([]func(models.JSONMap), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot.Clone())
	}
	return nil
}

// Reset restores the defaults and removes the stored copy
func (s *SettingsContext) Reset(ctx context.Context) error {
	if err := s.store.Delete(ctx, models.SettingsStorageKey); err != nil {
		return fmt.Errorf("reset settings: %w", err)
	}
	s.mu.Lock()
	s.settings = models.DefaultSettings()
	s.unsaved = false
	s.mu.Unlock()
	return nil
}
