// Package lorem is a mock generator that writes lorem ipsum.
// Used for development without requiring real API keys.
package lorem

import (
	"context"
	"strings"
	"sync"

	loremgen "github.com/bozaro/golorem"

	"elevatehub/internal/domain/services"
)

// Generator writes one to three paragraphs of filler text
type Generator struct {
	generator *loremgen.Lorem
	mu        sync.Mutex
}

// NewGenerator creates a new lorem ipsum generator.
func NewGenerator() *Generator {
	return &Generator{
		generator: loremgen.New(),
	}
}

// Name returns the provider name.
func (g *Generator) Name() string {
	return "lorem"
}

// Generate ignores the request apart from honouring cancellation
func (g *Generator) Generate(ctx context.Context, req *services.GenerateRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// Longer questions get longer answers
	paragraphs := 1 + min(len(strings.Fields(req.Message))/10, 2)

	g.mu.Lock()
	defer g.mu.Unlock()

	parts := make([]string, 0, paragraphs)
	for i := 0; i < paragraphs; i++ {
		parts = append(parts, g.generator.Paragraph(3, 5))
	}
	return strings.Join(parts, "\n\n"), nil
}
