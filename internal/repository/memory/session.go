package memory

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"elevatehub/internal/domain"
	"elevatehub/internal/domain/models"
	"elevatehub/internal/domain/repositories"
)

type sessionRecord struct {
	session models.Session
}

// clone copies the record so callers never share slices with the store
func (r *sessionRecord) clone() *models.Session {
	s := r.session
	s.Messages = make([]models.Message, len(r.session.Messages))
	for i, m := range r.session.Messages {
		m.Metadata = m.Metadata.Clone()
		s.Messages[i] = m
	}
	s.Context = r.session.Context.Clone()
	return &s
}

// SessionRepository implements the SessionRepository interface in memory
type SessionRepository struct {
	store  *Store
	logger *slog.Logger
	now    func() time.Time
}

// NewSessionRepository creates a session repository over store
func NewSessionRepository(store *Store, logger *slog.Logger) repositories.SessionRepository {
	return newSessionRepository(store, logger, func() time.Time { return time.Now().UTC() })
}

func newSessionRepository(store *Store, logger *slog.Logger, now func() time.Time) *SessionRepository {
	return &SessionRepository{store: store, logger: logger, now: now}
}

// GetOrCreate returns the session, creating it when absent. Only the owner
// refreshes updated_at.
func (r *SessionRepository) GetOrCreate(_ context.Context, id, userID string) (*models.Session, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := r.now()
	if rec, ok := r.store.sessions[id]; ok {
		if rec.session.UserID == userID {
			rec.session.UpdatedAt = now
		}
		return rec.clone(), false, nil
	}

	rec := &sessionRecord{session: models.Session{
		ID:          id,
		UserID:      userID,
		Messages:    []models.Message{},
		Context:     models.JSONMap{},
		CreatedAt:   now,
		UpdatedAt:   now,
		IsActive:    true,
		SessionType: "chat",
	}}
	r.store.sessions[id] = rec
	r.logger.Info("created session", "session_id", id, "user_id", userID)
	return rec.clone(), true, nil
}

// Get returns a copy of the session
func (r *SessionRepository) Get(_ context.Context, id string) (*models.Session, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rec, ok := r.store.sessions[id]
	if !ok {
		return nil, domain.NewNotFound("session", id)
	}
	return rec.clone(), nil
}

// AddMessage appends a copy of msg
func (r *SessionRepository) AddMessage(_ context.Context, sessionID string, msg *models.Message) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rec, ok := r.store.sessions[sessionID]
	if !ok {
		return domain.NewNotFound("session", sessionID)
	}
	m := *msg
	m.SessionID = sessionID
	m.Metadata = msg.Metadata.Clone()
	rec.session.Messages = append(rec.session.Messages, m)
	rec.session.UpdatedAt = r.now()
	return nil
}

// UpdateContext replaces the session context
func (r *SessionRepository) UpdateContext(_ context.Context, sessionID string, sessionCtx models.JSONMap) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rec, ok := r.store.sessions[sessionID]
	if !ok {
		return domain.NewNotFound("session", sessionID)
	}
	rec.session.Context = sessionCtx.Clone()
	return nil
}

// ListByUser returns copies sorted by updated_at, newest first
func (r *SessionRepository) ListByUser(_ context.Context, userID string, limit int) ([]models.Session, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	sessions := []models.Session{}
	for _, rec := range r.store.sessions {
		if rec.session.UserID == userID {
			sessions = append(sessions, *rec.clone())
		}
	}
	sort.SliceStable(sessions, func(i, j int) bool {
		if sessions[i].UpdatedAt.Equal(sessions[j].UpdatedAt) {
			return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
		}
		return sessions[i].UpdatedAt.After(sessions[j].UpdatedAt)
	})
	if limit > 0 && len(sessions) > limit {
		sessions = sessions[:limit]
	}
	return sessions, nil
}

// Delete removes the session when userID owns it
func (r *SessionRepository) Delete(_ context.Context, id, userID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rec, ok := r.store.sessions[id]
	if !ok || rec.session.UserID != userID {
		return domain.NewNotFound("session", id)
	}
	delete(r.store.sessions, id)
	r.logger.Info("deleted session", "session_id", id, "user_id", userID)
	return nil
}

// DeleteUpdatedBefore removes sessions idle since before cutoff
func (r *SessionRepository) DeleteUpdatedBefore(_ context.Context, cutoff time.Time) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	n := 0
	for id, rec := range r.store.sessions {
		if rec.session.UpdatedAt.Before(cutoff) {
			delete(r.store.sessions, id)
			n++
		}
	}
	return n, nil
}
