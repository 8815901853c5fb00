package catalog

import (
	"strings"
	"testing"

	"elevatehub/internal/domain/models"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}
	return r
}

func TestIntentsOrder(t *testing.T) {
	r := newTestRegistry(t)

	want := []string{"onboarding", "technical", "domain", "team", "project", "tools", "general_help"}
	got := r.Intents()
	if len(got) != len(want) {
		t.Fatalf("got %d intents, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("intent %d = %q, want %q", i, got[i].Name, name)
		}
		if len(got[i].Keywords) == 0 || len(got[i].Examples) == 0 {
			t.Errorf("intent %q has no keywords or examples", name)
		}
	}
}

func TestQuickActions(t *testing.T) {
	r := newTestRegistry(t)

	actions := r.QuickActions()
	if len(actions) != 6 {
		t.Fatalf("got %d quick actions, want 6", len(actions))
	}

	tests := []struct {
		name       string
		id         string
		wantOK     bool
		wantPrefix string
	}{
		{"global action", "onboarding-help", true, "I need help with my onboarding"},
		{"project action", "claims-help", true, "How does the claims processing"},
		{"fintech action", "stripe-help", true, "I need help integrating Stripe"},
		{"unknown action", "does-not-exist", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt, ok := r.QuickActionPrompt(tt.id)
			if ok != tt.wantOK {
				t.Fatalf("QuickActionPrompt(%q) ok = %v, want %v", tt.id, ok, tt.wantOK)
			}
			if !strings.HasPrefix(prompt, tt.wantPrefix) {
				t.Errorf("prompt = %q, want prefix %q", prompt, tt.wantPrefix)
			}
		})
	}
}

func TestGlobalQuickActionWinsOverProject(t *testing.T) {
	r := newTestRegistry(t)

	a, ok := r.QuickAction("insurance-basics")
	if !ok {
		t.Fatal("insurance-basics not found")
	}
	if a.Description == "" {
		t.Error("expected the global action, which carries a description")
	}
}

func TestSuggestions(t *testing.T) {
	r := newTestRegistry(t)

	if got := r.Suggestions("team"); len(got) != 3 || got[0] != "Who is my project lead?" {
		t.Errorf("Suggestions(team) = %v", got)
	}
	// project has no dedicated list
	if got := r.Suggestions("project"); len(got) != 3 || got[0] != "Can you explain that in more detail?" {
		t.Errorf("Suggestions(project) = %v", got)
	}
}

func TestTemplatesAndAdditions(t *testing.T) {
	r := newTestRegistry(t)

	if got := r.Template("nonsense"); got != r.Template("general_help") {
		t.Errorf("unknown intent template = %q, want general_help template", got)
	}
	if got := r.Addition("project", ""); got != " You're currently working on the Insurance Digital Platform project." {
		t.Errorf("Addition(project) = %q", got)
	}
	if got := r.Addition("project", "FinTech Payment Gateway"); !strings.Contains(got, "FinTech Payment Gateway") {
		t.Errorf("Addition(project, fintech) = %q", got)
	}
	if got := r.Addition("domain", ""); got != "" {
		t.Errorf("Addition(domain) = %q, want empty", got)
	}
}

func TestKnowledgeEntries(t *testing.T) {
	r := newTestRegistry(t)

	entries := r.KnowledgeEntries()
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	for _, e := range entries {
		if !e.IsActive || e.Version != 1 || e.CreatedAt.IsZero() {
			t.Errorf("entry %q not initialised: %+v", e.ID, e)
		}
	}
}

func TestProjects(t *testing.T) {
	r := newTestRegistry(t)

	projects := r.Projects()
	if len(projects) != 2 {
		t.Fatalf("got %d projects, want 2", len(projects))
	}

	p, ok := r.Project("insurance-2024")
	if !ok {
		t.Fatal("insurance-2024 not found")
	}
	if p.Project.Lead.Name != "Sarin" {
		t.Errorf("lead = %q, want Sarin", p.Project.Lead.Name)
	}
	if len(p.Team) != 20 {
		t.Errorf("team size = %d, want 20", len(p.Team))
	}
	if p.Onboarding.OverallProgress != 35 {
		t.Errorf("overall progress = %d, want 35", p.Onboarding.OverallProgress)
	}
	phase, ok := p.Onboarding.CurrentPhase()
	if !ok || phase.Title != "Technical Environment Setup" {
		t.Errorf("current phase = %+v", phase)
	}
	for _, s := range p.Skills {
		switch s.Level {
		case models.SkillStrong, models.SkillOkay, models.SkillNeedsImprovement:
		default:
			t.Errorf("skill %q has unnormalised level %q", s.Name, s.Level)
		}
	}

	if _, ok := r.Project("missing"); ok {
		t.Error("expected missing project to be absent")
	}
}
