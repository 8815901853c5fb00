package converter

import (
	"context"
	"fmt"
	"strings"
)

type markdownConverter struct{}

// NewMarkdownConverter reads markdown with optional YAML frontmatter
// (title, category, tags).
func NewMarkdownConverter() Converter {
	return &markdownConverter{}
}

func (c *markdownConverter) Convert(_ context.Context, input []byte) (*Document, error) {
	meta, body, err := ParseFrontmatter(input)
	if err != nil {
		return nil, err
	}

	doc := &Document{Content: strings.TrimSpace(body)}
	if meta == nil {
		return doc, nil
	}

	if v, ok := meta["title"]; ok {
		s, isString := v.(string)
		if !isString {
			return nil, fmt.Errorf("frontmatter field 'title' must be a string")
		}
		doc.Title = s
	}
	if v, ok := meta["category"]; ok {
		s, isString := v.(string)
		if !isString {
			return nil, fmt.Errorf("frontmatter field 'category' must be a string")
		}
		doc.Category = s
	}
	if tags, ok := meta["tags"].([]interface{}); ok {
		for _, tag := range tags {
			if s, ok := tag.(string); ok {
				doc.Tags = append(doc.Tags, s)
			}
		}
	}
	return doc, nil
}

func (c *markdownConverter) SupportedExtensions() []string {
	return []string{".md", ".markdown"}
}

func (c *markdownConverter) Name() string {
	return "markdown"
}
