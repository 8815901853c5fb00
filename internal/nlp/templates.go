package nlp

import (
	"context"

	"elevatehub/internal/domain/services"
)

// Templates supplies canned reply text
type Templates interface {
	Template(intent string) string
	Addition(intent, project string) string
}

// TemplateGenerator answers with the intent's canned reply plus a
// context line and the best knowledge base snippet
type TemplateGenerator struct {
	templates Templates
}

var _ services.ResponseGenerator = (*TemplateGenerator)(nil)

// NewTemplateGenerator creates a generator backed by templates
func NewTemplateGenerator(templates Templates) *TemplateGenerator {
	return &TemplateGenerator{templates: templates}
}

// Name identifies the generator in message metadata
func (g *TemplateGenerator) Name() string {
	return "template"
}

// Generate never fails
func (g *TemplateGenerator) Generate(_ context.Context, req *services.GenerateRequest) (string, error) {
	project, _ := req.Context.String("project_name")

	response := g.templates.Template(req.Intent.Name)
	response += g.templates.Addition(req.Intent.Name, project)

	if len(req.Knowledge) > 0 && req.Knowledge[0].Snippet != "" {
		response += "\n\n" + req.Knowledge[0].Snippet
	}
	return response, nil
}
