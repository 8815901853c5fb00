package client

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// ProjectStorageKey is the local storage key for the selected project
const ProjectStorageKey = "elevateHub_project"

// KV is the local storage the contexts persist to
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type selection struct {
	ID   string `json:"selectedProjectId,omitempty"`
	Name string `json:"selectedProjectName,omitempty"`
}

type subscriber struct {
	id int
	fn func(id, name string)
}

// ProjectSelection tracks the project the dashboard is focused on.
// Subscribers run in registration order and must not call Select or Clear.
type ProjectSelection struct {
	// notifyMu serializes set so every subscriber sees changes in the order they were made
	notifyMu sync.Mutex

	mu          sync.Mutex
	current     selection
	subscribers []subscriber
	nextID      int
}

func NewProjectSelection() *ProjectSelection {
	return &ProjectSelection{}
}

// Select sets the project and notifies subscribers before returning
func (p *ProjectSelection) Select(id, name string) {
	p.set(selection{ID: id, Name: name})
}

// Clear drops the selection and notifies subscribers with empty values
func (p *ProjectSelection) Clear() {
	p.set(selection{})
}

func (p *ProjectSelection) set(s selection) {
	p.notifyMu.Lock()
	defer p.notifyMu.Unlock()

	p.mu.Lock()
	p.current = s
	subs := make([]subscriber, len(p.subscribers))
	copy(subs, p.subscribers)
	p.mu.Unlock()

	for _, sub := range subs {
		sub.fn(s.ID, s.Name)
	}
}

// Selected returns the current project. ok is false when none is selected.
func (p *ProjectSelection) Selected() (id, name string, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current.ID, p.current.Name, p.current.ID != ""
}

// Subscribe registers fn for selection changes. The returned func removes it.
func (p *ProjectSelection) Subscribe(fn func(id, name string)) (unsubscribe func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := p.nextID
	p.nextID++
	p.subscribers = append(p.subscribers, subscriber{id: id, fn: fn})
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		for i, sub := range p.subscribers {
			if sub.id == id {
				p.subscribers = append(p.subscribers[:i:i], p.subscribers[i+1:]...)
				return
			}
		}
	}
}

// Save persists the selection, or removes the key when nothing is selected
func (p *ProjectSelection) Save(ctx context.Context, store KV) error {
	p.mu.Lock()
	s := p.current
	p.mu.Unlock()

	if s.ID == "" {
		return store.Delete(ctx, ProjectStorageKey)
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode project selection: %w", err)
	}
	return store.Set(ctx, ProjectStorageKey, string(raw))
}

// Restore loads a saved selection without notifying subscribers
func (p *ProjectSelection) Restore(ctx context.Context, store KV) error {
	raw, ok, err := store.Get(ctx, ProjectStorageKey)
	if err != nil || !ok {
		return err
	}
	var s selection
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return fmt.Errorf("decode project selection: %w", err)
	}
	p.mu.Lock()
	p.current = s
	p.mu.Unlock()
	return nil
}
