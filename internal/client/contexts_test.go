package client

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elevatehub/internal/domain/models"
	"elevatehub/internal/localstore"
)

func openStore(t *testing.T) *localstore.Store {
	t.Helper()
	s, err := localstore.Open(localstore.Memory)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestProjectSelectionNotifiesSynchronously(t *testing.T) {
	p := NewProjectSelection()
	var seen []string
	unsubscribe := p.Subscribe(func(id, name string) { seen = append(seen, id+"/"+name) })

	p.Select("insurance-2024", "Insurance Digital Transformation")
	assert.Equal(t, []string{"insurance-2024/Insurance Digital Transformation"}, seen)

	id, name, ok := p.Selected()
	assert.True(t, ok)
	assert.Equal(t, "insurance-2024", id)
	assert.Equal(t, "Insurance Digital Transformation", name)

	p.Clear()
	_, _, ok = p.Selected()
	assert.False(t, ok)
	assert.Equal(t, "/", seen[1])

	unsubscribe()
	p.Select("fintech-2024", "FinTech")
	assert.Len(t, seen, 2)
}

func TestProjectSelectionNotifiesInRegistrationOrder(t *testing.T) {
	p := NewProjectSelection()
	var order []int
	for i := 0; i < 5; i++ {
		i := i
		p.Subscribe(func(string, string) { order = append(order, i) })
	}
	unsubscribe := p.Subscribe(func(string, string) { order = append(order, 99) })
	unsubscribe()

	p.Select("insurance-2024", "Insurance")
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestProjectSelectionConcurrentSelectsDeliverInOrder(t *testing.T) {
	p := NewProjectSelection()
	var mu sync.Mutex
	first, second := []string{}, []string{}
	p.Subscribe(func(id, _ string) {
		mu.Lock()
		first = append(first, id)
		mu.Unlock()
	})
	p.Subscribe(func(id, _ string) {
		mu.Lock()
		second = append(second, id)
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p.Select(fmt.Sprintf("project-%d", i), "")
		}(i)
	}
	wg.Wait()

	// every subscriber observes the same sequence, ending on the final selection
	require.Len(t, first, 50)
	assert.Equal(t, first, second)
	id, _, _ := p.Selected()
	assert.Equal(t, first[len(first)-1], id)
}

func TestProjectSelectionPersists(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	p := NewProjectSelection()
	p.Select("fintech-2024", "FinTech Payment Gateway")
	require.NoError(t, p.Save(ctx, store))

	restored := NewProjectSelection()
	require.NoError(t, restored.Restore(ctx, store))
	id, name, ok := restored.Selected()
	assert.True(t, ok)
	assert.Equal(t, "fintech-2024", id)
	assert.Equal(t, "FinTech Payment Gateway", name)

	p.Clear()
	require.NoError(t, p.Save(ctx, store))
	_, found, err := store.Get(ctx, ProjectStorageKey)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSettingsSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	s := NewSettingsContext(store, discardLogger())
	require.NoError(t, s.Load(ctx))
	assert.False(t, s.HasUnsavedChanges())

	s.Update("theme", "light")
	s.Update("fontSize", float64(18))
	assert.True(t, s.HasUnsavedChanges())

	var saved models.JSONMap
	s.OnSaved(func(m models.JSONMap) { saved = m })
	require.NoError(t, s.Save(ctx))
	assert.False(t, s.HasUnsavedChanges())
	assert.Equal(t, "light", saved["theme"])

	fresh := NewSettingsContext(store, discardLogger())
	require.NoError(t, fresh.Load(ctx))
	assert.Equal(t, s.Settings(), fresh.Settings())
}

func TestSettingsLoadMergesOverDefaults(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	require.NoError(t, store.Set(ctx, models.SettingsStorageKey, `{"theme":"light","extra":true}`))

	s := NewSettingsContext(store, discardLogger())
	require.NoError(t, s.Load(ctx))

	got := s.Settings()
	assert.Equal(t, "light", got["theme"])
	assert.Equal(t, "blue", got["colorScheme"])
	assert.Equal(t, true, got["extra"])
}

func TestSettingsLoadBadDataKeepsDefaults(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	require.NoError(t, store.Set(ctx, models.SettingsStorageKey, `{not json`))

	s := NewSettingsContext(store, discardLogger())
	require.NoError(t, s.Load(ctx))
	assert.Equal(t, models.DefaultSettings(), s.Settings())
}

func TestSettingsReset(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	s := NewSettingsContext(store, discardLogger())
	s.Update("theme", "light")
	require.NoError(t, s.Save(ctx))
	require.NoError(t, s.Reset(ctx))

	assert.Equal(t, "dark", s.Settings()["theme"])
	assert.False(t, s.HasUnsavedChanges())
	_, ok, err := store.Get(ctx, models.SettingsStorageKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

// raceKV calls during once, ahead of the next write, to mimic an edit made while Save is in flight
type raceKV struct {
	KV
	during func()
}

func (r *raceKV) Set(ctx context.Context, key, value string) error {
	if r.during != nil {
		r.during()
		r.during = nil
	}
	return r.KV.Set(ctx, key, value)
}

func TestSettingsUpdateDuringSaveStaysUnsaved(t *testing.T) {
	ctx := context.Background()
	kv := &raceKV{KV: openStore(t)}

	s := NewSettingsContext(kv, discardLogger())
	s.Update("theme", "light")
	kv.during = func() { s.Update("fontSize", float64(20)) }

	var notified []models.JSONMap
	s.OnSaved(func(m models.JSONMap) { notified = append(notified, m) })
	require.NoError(t, s.Save(ctx))

	assert.True(t, s.HasUnsavedChanges(), "the edit made during Save was not written")
	require.Len(t, notified, 1)
	assert.Equal(t, float64(16), notified[0]["fontSize"])

	require.NoError(t, s.Save(ctx))
	assert.False(t, s.HasUnsavedChanges())

	fresh := NewSettingsContext(kv, discardLogger())
	require.NoError(t, fresh.Load(ctx))
	assert.Equal(t, float64(20), fresh.Settings()["fontSize"])
}

func TestSettingsSaveNotifiesEveryListener(t *testing.T) {
	ctx := context.Background()
	s := NewSettingsContext(openStore(t), discardLogger())

	var calls []string
	s.OnSaved(func(models.JSONMap) { calls = append(calls, "a") })
	s.OnSaved(func(models.JSONMap) { calls = append(calls, "b") })
	require.NoError(t, s.Save(ctx))
	assert.Equal(t, []string{"a", "b"}, calls)
}
