package services

import (
	"context"

	"elevatehub/internal/domain/models"
)

// TeamFilter narrows a project team listing
type TeamFilter struct {
	Department string
	Query      string // case-insensitive match on name, role or skills
}

// ProjectService serves project dashboards
type ProjectService interface {
	List(ctx context.Context) []models.ProjectSummary
	Get(ctx context.Context, id string) (*models.ProjectData, error)
	Team(ctx context.Context, id string, filter TeamFilter) ([]models.TeamMember, error)
	Skills(ctx context.Context, id string, level string) ([]models.Skill, error)
	Tools(ctx context.Context, id string, status string) ([]models.Tool, error)
}
