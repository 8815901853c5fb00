package converter

import (
	"context"
	"strings"
)

// textConverter passes plain text through
type textConverter struct{}

// NewTextConverter creates a new text converter.
func NewTextConverter() Converter {
	return &textConverter{}
}

func (c *textConverter) Convert(_ context.Context, input []byte) (*Document, error) {
	return &Document{Content: strings.TrimSpace(string(input))}, nil
}

func (c *textConverter) SupportedExtensions() []string {
	return []string{".txt", ".text"}
}

func (c *textConverter) Name() string {
	return "plaintext"
}
