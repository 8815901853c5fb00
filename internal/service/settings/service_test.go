package settings

import (
	"context"
	"errors"
	"io"
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"elevatehub/internal/domain"
	"elevatehub/internal/domain/models"
	"elevatehub/internal/domain/services"
	"elevatehub/internal/repository/memory"
)

func newTestService() services.SettingsService {
	store := memory.NewStore()
	return NewService(memory.NewSettingsRepository(store), memory.NewTransactionManager(store), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestGetReturnsDefaults(t *testing.T) {
	svc := newTestService()

	got, err := svc.Get(context.Background(), "alice")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got["theme"] != "dark" || got["fontSize"] != float64(16) {
		t.Errorf("defaults missing: %v", got)
	}
	if len(got) != len(models.DefaultSettings()) {
		t.Errorf("got %d keys, want %d", len(got), len(models.DefaultSettings()))
	}
}

func TestSaveRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	saved := models.JSONMap{"theme": "light", "customKey": "kept"}
	if _, err := svc.Save(ctx, "alice", saved); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	saved["theme"] = "mutated after save"

	got, err := svc.Get(ctx, "alice")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got["theme"] != "light" || got["customKey"] != "kept" || got["language"] != "en" {
		t.Errorf("round trip = %v", got)
	}
}

func TestUpdateMerges(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	if _, err := svc.Save(ctx, "alice", models.JSONMap{"theme": "light"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := svc.Update(ctx, "alice", models.JSONMap{"fontSize": float64(18)})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if got["theme"] != "light" || got["fontSize"] != float64(18) {
		t.Errorf("Update = %v", got)
	}
}

func TestConcurrentUpdatesKeepEveryKey(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	const writers = 25
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := svc.Update(ctx, "alice", models.JSONMap{fmt.Sprintf("key%d", i): float64(i)}); err != nil {
				t.Errorf("Update %d failed: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	got, err := svc.Get(ctx, "alice")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	for i := 0; i < writers; i++ {
		if got[fmt.Sprintf("key%d", i)] != float64(i) {
			t.Errorf("key%d lost: %v", i, got)
		}
	}
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	if _, err := svc.Save(ctx, "alice", models.JSONMap{"theme": "light"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := svc.Reset(ctx, "alice")
	if err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if got["theme"] != "dark" {
		t.Errorf("Reset = %v", got)
	}

	after, _ := svc.Get(ctx, "alice")
	if after["theme"] != "dark" {
		t.Errorf("settings survived reset: %v", after)
	}
}

func TestValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	if _, err := svc.Get(ctx, ""); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("Get err = %v", err)
	}
	if _, err := svc.Save(ctx, "alice", nil); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("Save nil err = %v", err)
	}
}
