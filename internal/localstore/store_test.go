package localstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open(Memory)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSetGetDelete(t *testing.T) {
	ctx := context.Background()
	s := openMemory(t)

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "elevateHub_settings", `{"theme":"dark"}`))
	require.NoError(t, s.Set(ctx, "elevateHub_settings", `{"theme":"light"}`))

	v, ok, err := s.Get(ctx, "elevateHub_settings")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"theme":"light"}`, v)

	require.NoError(t, s.Delete(ctx, "elevateHub_settings"))
	require.NoError(t, s.Delete(ctx, "elevateHub_settings"))
	_, ok, err = s.Get(ctx, "elevateHub_settings")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKeys(t *testing.T) {
	ctx := context.Background()
	s := openMemory(t)

	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)

	require.NoError(t, s.Set(ctx, "b", "2"))
	require.NoError(t, s.Set(ctx, "a", "1"))

	keys, err = s.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)
}

func TestPersistsAcrossOpen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "askbot.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "elevateHub_project", `{"id":"insurance-2024"}`))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	v, ok, err := s.Get(ctx, "elevateHub_project")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"id":"insurance-2024"}`, v)
}

func TestOpenValidation(t *testing.T) {
	_, err := Open("  ")
	assert.Error(t, err)

	s := openMemory(t)
	assert.Error(t, s.Set(context.Background(), "", "x"))
}
