package chat

import (
	"sync"
	"time"

	"elevatehub/internal/domain/models"
)

// ContextTracker keeps the most recent interactions of each session
type ContextTracker struct {
	limit        int
	interactions map[string][]models.Interaction
	mu           sync.RWMutex
}

// NewContextTracker keeps up to limit interactions per session
func NewContextTracker(limit int) *ContextTracker {
	return &ContextTracker{
		limit:        limit,
		interactions: make(map[string][]models.Interaction),
	}
}

// Record appends an interaction, dropping the oldest beyond the limit
func (t *ContextTracker) Record(sessionID string, in models.Interaction) {
	t.mu.Lock()
	defer t.mu.Unlock()

	list := append(t.interactions[sessionID], in)
	if len(list) > t.limit {
		list = list[len(list)-t.limit:]
	}
	t.interactions[sessionID] = list
}

// Interactions returns a copy of the session's recorded interactions
func (t *ContextTracker) Interactions(sessionID string) []models.Interaction {
	t.mu.RLock()
	defer t.mu.RUnlock()

	list := t.interactions[sessionID]
	out := make([]models.Interaction, len(list))
	copy(out, list)
	return out
}

// RecentIntents returns the intents of the last n interactions, oldest first
func (t *ContextTracker) RecentIntents(sessionID string, n int) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	list := t.interactions[sessionID]
	if len(list) > n {
		list = list[len(list)-n:]
	}
	intents := make([]string, 0, len(list))
	for _, in := range list {
		intents = append(intents, in.Intent)
	}
	return intents
}

// Forget drops a session's history
func (t *ContextTracker) Forget(sessionID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.interactions, sessionID)
}

// PruneBefore drops sessions whose last interaction is older than cutoff
func (t *ContextTracker) PruneBefore(cutoff time.Time) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := 0
	for id, list := range t.interactions {
		if len(list) == 0 || list[len(list)-1].Timestamp.Before(cutoff) {
			delete(t.interactions, id)
			n++
		}
	}
	return n
}
