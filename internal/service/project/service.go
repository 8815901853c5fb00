// Package project serves the project dashboards from the catalog.
package project

import (
	"context"
	"log/slog"
	"strings"

	"elevatehub/internal/domain"
	"elevatehub/internal/domain/models"
	"elevatehub/internal/domain/services"
)

// Source supplies project data
type Source interface {
	Projects() []models.ProjectData
	Project(id string) (*models.ProjectData, bool)
}

// Service implements services.ProjectService
type Service struct {
	source Source
	logger *slog.Logger
}

// NewService creates a project service over source
func NewService(source Source, logger *slog.Logger) services.ProjectService {
	return &Service{source: source, logger: logger}
}

// List returns a summary of every project
func (s *Service) List(_ context.Context) []models.ProjectSummary {
	projects := s.source.Projects()
	out := make([]models.ProjectSummary, 0, len(projects))
	for _, p := range projects {
		out = append(out, models.ProjectSummary{
			ID:       p.Project.ID,
			Name:     p.Project.Name,
			Client:   p.Project.Client,
			Status:   p.Project.Status,
			Priority: p.Project.Priority,
			Progress: p.Project.Progress,
			Lead:     p.Project.Lead.Name,
		})
	}
	return out
}

// Get returns the full project data
func (s *Service) Get(_ context.Context, id string) (*models.ProjectData, error) {
	p, ok := s.source.Project(id)
	if !ok {
		return nil, domain.NewNotFound("project", id)
	}
	return p, nil
}

// Team lists members matching filter
func (s *Service) Team(ctx context.Context, id string, filter services.TeamFilter) ([]models.TeamMember, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(filter.Query))
	members := []models.TeamMember{}
	for _, m := range p.Team {
		if filter.Department != "" && !strings.EqualFold(m.Department, filter.Department) {
			continue
		}
		if query != "" && !memberMatches(m, query) {
			continue
		}
		members = append(members, m)
	}
	return members, nil
}

func memberMatches(m models.TeamMember, query string) bool {
	if strings.Contains(strings.ToLower(m.Name), query) || strings.Contains(strings.ToLower(m.Role), query) {
		return true
	}
	for _, skill := range m.Skills {
		if strings.Contains(strings.ToLower(skill), query) {
			return true
		}
	}
	return false
}

// Skills lists the project's skills, optionally at one level
func (s *Service) Skills(ctx context.Context, id string, level string) ([]models.Skill, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	want := models.NormalizeSkillLevel(strings.ToLower(level))
	skills := []models.Skill{}
	for _, sk := range p.Skills {
		if level == "" || sk.Level == want {
			skills = append(skills, sk)
		}
	}
	return skills, nil
}

// Tools lists the project's tools, optionally with one status
func (s *Service) Tools(ctx context.Context, id string, status string) ([]models.Tool, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	tools := []models.Tool{}
	for _, t := range p.Tools {
		if status == "" || strings.EqualFold(t.Status, status) {
			tools = append(tools, t)
		}
	}
	return tools, nil
}
