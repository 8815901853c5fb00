package knowledge

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"strings"
	"testing"

	"elevatehub/internal/catalog"
	"elevatehub/internal/domain"
	"elevatehub/internal/domain/models"
	"elevatehub/internal/domain/services"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSeededService(t *testing.T, extra ...models.KnowledgeEntry) services.KnowledgeService {
	t.Helper()
	reg, err := catalog.NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}
	return NewService(discardLogger(), reg.KnowledgeEntries(), extra)
}

func TestSearch(t *testing.T) {
	svc := newSeededService(t)

	tests := []struct {
		name      string
		query     string
		category  string
		limit     int
		wantIDs   []string
		wantScore []float64
	}{
		{
			name:      "title content and tag",
			query:     "Onboarding",
			wantIDs:   []string{"onboarding-basics"},
			wantScore: []float64{1.0},
		},
		{
			name:      "ordered by score",
			query:     "process",
			wantIDs:   []string{"onboarding-basics", "insurance-concepts"},
			wantScore: []float64{1.0, 0.3},
		},
		{
			name:      "tag only",
			query:     "tools",
			wantIDs:   []string{"tech-stack"},
			wantScore: []float64{0.2},
		},
		{
			name:      "category filter",
			query:     "process",
			category:  models.CategoryInsuranceDomain,
			wantIDs:   []string{"insurance-concepts"},
			wantScore: []float64{0.3},
		},
		{
			name:      "limit",
			query:     "process",
			limit:     1,
			wantIDs:   []string{"onboarding-basics"},
			wantScore: []float64{1.0},
		},
		{
			name:    "no match",
			query:   "kubernetes",
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Search(context.Background(), tt.query, tt.category, tt.limit)
			if err != nil {
				t.Fatalf("Search failed: %v", err)
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d results, want %d", len(got), len(tt.wantIDs))
			}
			for i, r := range got {
				if r.Entry.ID != tt.wantIDs[i] {
					t.Errorf("result %d = %s, want %s", i, r.Entry.ID, tt.wantIDs[i])
				}
				if math.Abs(r.RelevanceScore-tt.wantScore[i]) > 1e-9 {
					t.Errorf("result %d score = %v, want %v", i, r.RelevanceScore, tt.wantScore[i])
				}
			}
		})
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	svc := newSeededService(t)

	for _, q := range []string{"", "   "} {
		if _, err := svc.Search(context.Background(), q, "", 5); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("Search(%q) err = %v, want ErrValidation", q, err)
		}
	}
}

func TestSearchSnippetAndHighlights(t *testing.T) {
	long := models.KnowledgeEntry{
		ID:       "long",
		Title:    "Claims Handbook",
		Content:  strings.Repeat("claims processing detail ", 20),
		Category: models.CategoryInsuranceDomain,
		Tags:     []string{},
		IsActive: true,
	}
	svc := newSeededService(t, long)

	got, err := svc.Search(context.Background(), "claims processing", "", 5)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d results, want 2", len(got))
	}

	for _, r := range got {
		if len(r.HighlightedTerms) != 2 || r.HighlightedTerms[0] != "claims" || r.HighlightedTerms[1] != "processing" {
			t.Errorf("%s highlighted = %v", r.Entry.ID, r.HighlightedTerms)
		}
		if r.Entry.ID == "long" {
			if len([]rune(r.Snippet)) != 203 || !strings.HasSuffix(r.Snippet, "...") {
				t.Errorf("snippet = %q", r.Snippet)
			}
		} else if r.Snippet != r.Entry.Content {
			t.Errorf("short content should not be truncated: %q", r.Snippet)
		}
	}
}

func TestNewServiceOverridesAndCounts(t *testing.T) {
	override := models.KnowledgeEntry{
		ID:       "tech-stack",
		Title:    "Go Services",
		Content:  "Backend services are written in Go.",
		Category: models.CategoryTechnicalStandards,
		IsActive: true,
	}
	inactive := models.KnowledgeEntry{ID: "draft", Title: "Draft", Content: "draft", IsActive: false}
	svc := newSeededService(t, override, inactive)

	if n := svc.Count(); n != 3 {
		t.Errorf("Count() = %d, want 3", n)
	}

	got, err := svc.Search(context.Background(), "backend", "", 5)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(got) != 1 || got[0].Entry.Title != "Go Services" {
		t.Errorf("override not applied: %+v", got)
	}

	if got, _ := svc.Search(context.Background(), "draft", "", 5); len(got) != 0 {
		t.Error("inactive entries must not be searched")
	}
}
