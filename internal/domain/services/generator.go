package services

import (
	"context"

	"elevatehub/internal/domain/models"
)

// GenerateRequest is everything a generator may use to write a reply
type GenerateRequest struct {
	Message   string
	Intent    models.Intent
	Context   models.JSONMap
	History   []models.Message
	Knowledge []models.SearchResult
}

// ResponseGenerator writes the assistant's reply text
type ResponseGenerator interface {
	Name() string
	Generate(ctx context.Context, req *GenerateRequest) (string, error)
}
