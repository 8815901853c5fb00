// Package anthropic writes chat replies with Claude models.
package anthropic

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"elevatehub/internal/domain/services"
	"elevatehub/internal/service/llm/prompt"
)

// Generator implements services.ResponseGenerator against the Messages API
type Generator struct {
	client      *anthropic.Client
	model       string
	maxTokens   int64
	temperature float64
}

// NewGenerator creates a generator for model. opts are passed to the client.
func NewGenerator(apiKey, model string, maxTokens int, temperature float64, opts ...option.RequestOption) (*Generator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic API key is required")
	}
	if !strings.HasPrefix(model, "claude-") {
		return nil, fmt.Errorf("model '%s' is not supported by Anthropic provider", model)
	}
	if maxTokens <= 0 {
		maxTokens = 1000
	}

	client := anthropic.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...)

	return &Generator{
		client:      &client,
		model:       model,
		maxTokens:   int64(maxTokens),
		temperature: temperature,
	}, nil
}

// Name returns the provider name.
func (g *Generator) Name() string {
	return "anthropic"
}

// Generate sends the conversation to Claude and returns the text blocks joined
func (g *Generator) Generate(ctx context.Context, req *services.GenerateRequest) (string, error) {
	turns := prompt.Turns(req)
	messages := make([]anthropic.MessageParam, 0, len(turns))
	for _, t := range turns {
		block := anthropic.NewTextBlock(t.Text)
		if t.Role == prompt.RoleAssistant {
			messages = append(messages, anthropic.NewAssistantMessage(block))
		} else {
			messages = append(messages, anthropic.NewUserMessage(block))
		}
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		Messages:  messages,
		MaxTokens: g.maxTokens,
		System: []anthropic.TextBlockParam{
			{
				Type: "text",
				Text: prompt.System(req),
			},
		},
		Temperature: anthropic.Float(g.temperature),
	}

	message, err := g.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic API call failed: %w", err)
	}

	var sb strings.Builder
	for _, content := range message.Content {
		if content.Type == "text" {
			sb.WriteString(content.Text)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("anthropic response had no text content (stop_reason %s)", message.StopReason)
	}
	return sb.String(), nil
}
