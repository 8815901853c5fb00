package services

import (
	"context"

	"elevatehub/internal/domain/models"
)

// KnowledgeService searches the onboarding knowledge base
type KnowledgeService interface {
	// Search matches query as a substring of title, content or tags.
	// An empty category searches every category.
	Search(ctx context.Context, query, category string, limit int) ([]models.SearchResult, error)

	// Count returns the number of active entries
	Count() int
}
