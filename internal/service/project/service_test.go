package project

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"elevatehub/internal/catalog"
	"elevatehub/internal/domain"
	"elevatehub/internal/domain/models"
	"elevatehub/internal/domain/services"
)

func newTestService(t *testing.T) services.ProjectService {
	t.Helper()
	reg, err := catalog.NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}
	return NewService(reg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestList(t *testing.T) {
	got := newTestService(t).List(context.Background())
	if len(got) != 2 {
		t.Fatalf("List() returned %d projects, want 2", len(got))
	}
	if got[0].ID != "insurance-2024" || got[0].Lead != "Sarin" || got[0].Progress != 35 {
		t.Errorf("first summary = %+v", got[0])
	}
	if got[1].ID != "fintech-2024" {
		t.Errorf("second summary = %+v", got[1])
	}
}

func TestGetUnknown(t *testing.T) {
	_, err := newTestService(t).Get(context.Background(), "nope")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestTeam(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name   string
		filter services.TeamFilter
		want   int
	}{
		{"everyone", services.TeamFilter{}, 20},
		{"department", services.TeamFilter{Department: "Leadership"}, 3},
		{"skill query", services.TeamFilter{Query: "insurance testing"}, 2},
		{"name query", services.TeamFilter{Query: "SARIN"}, 1},
		{"role and department", services.TeamFilter{Department: "dev-team", Query: "developer"}, 3},
		{"no match", services.TeamFilter{Query: "astronaut"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Team(context.Background(), "insurance-2024", tt.filter)
			if err != nil {
				t.Fatalf("Team failed: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("Team(%+v) returned %d members, want %d", tt.filter, len(got), tt.want)
			}
		})
	}

	if _, err := svc.Team(context.Background(), "nope", services.TeamFilter{}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("unknown project err = %v", err)
	}
}

func TestSkillsAndTools(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	skills, err := svc.Skills(ctx, "insurance-2024", "needs-work")
	if err != nil {
		t.Fatalf("Skills failed: %v", err)
	}
	if len(skills) != 4 {
		t.Errorf("needs-work skills = %d, want 4", len(skills))
	}
	for _, s := range skills {
		if s.Level != models.SkillNeedsImprovement {
			t.Errorf("skill %s level = %s", s.Name, s.Level)
		}
	}

	all, _ := svc.Skills(ctx, "insurance-2024", "")
	if len(all) != 16 {
		t.Errorf("all skills = %d, want 16", len(all))
	}

	tools, err := svc.Tools(ctx, "insurance-2024", models.ToolInstalled)
	if err != nil {
		t.Fatalf("Tools failed: %v", err)
	}
	if len(tools) != 2 {
		t.Errorf("installed tools = %d, want 2", len(tools))
	}
}
