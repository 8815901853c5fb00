package converter

import (
	"context"
	"strings"
	"testing"
)

func TestParseFrontmatter(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantMeta bool
		wantBody string
		wantErr  bool
	}{
		{
			name:     "no frontmatter",
			input:    "# Title\nbody",
			wantBody: "# Title\nbody",
		},
		{
			name:     "with frontmatter",
			input:    "---\ntitle: Claims\n---\nbody",
			wantMeta: true,
			wantBody: "body",
		},
		{
			name:     "crlf opening line",
			input:    "---\r\ntitle: Claims\r\n---\r\nbody",
			wantMeta: true,
			wantBody: "body",
		},
		{
			name:    "unterminated",
			input:   "---\ntitle: Claims\nbody",
			wantErr: true,
		},
		{
			name:    "bad yaml",
			input:   "---\ntitle: [unclosed\n---\nbody",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, body, err := ParseFrontmatter([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFrontmatter() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if (meta != nil) != tt.wantMeta {
				t.Errorf("meta = %v, wantMeta %v", meta, tt.wantMeta)
			}
			if strings.TrimSpace(body) != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestMarkdownConverter(t *testing.T) {
	input := "---\ntitle: Claims Handling\ncategory: insurance_domain\ntags: [claims, fnol]\n---\n\nFirst notice of loss starts a claim.\n"

	doc, err := NewMarkdownConverter().Convert(context.Background(), []byte(input))
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if doc.Title != "Claims Handling" || doc.Category != "insurance_domain" {
		t.Errorf("doc = %+v", doc)
	}
	if len(doc.Tags) != 2 || doc.Tags[0] != "claims" || doc.Tags[1] != "fnol" {
		t.Errorf("tags = %v", doc.Tags)
	}
	if doc.Content != "First notice of loss starts a claim." {
		t.Errorf("content = %q", doc.Content)
	}

	if _, err := NewMarkdownConverter().Convert(context.Background(), []byte("---\ntitle: 3\n---\nx")); err == nil {
		t.Error("expected error for non-string title")
	}
}

func TestHTMLConverterSanitizes(t *testing.T) {
	input := `<h1>Setup</h1><p>Install <strong>Docker</strong>.</p><script>alert(1)</script>`

	doc, err := NewHTMLConverter().Convert(context.Background(), []byte(input))
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if strings.Contains(doc.Content, "alert") || strings.Contains(doc.Content, "<script") {
		t.Errorf("script survived: %q", doc.Content)
	}
	if !strings.Contains(doc.Content, "# Setup") || !strings.Contains(doc.Content, "**Docker**") {
		t.Errorf("content = %q", doc.Content)
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	want := []string{".htm", ".html", ".markdown", ".md", ".text", ".txt"}
	got := r.SupportedExtensions()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("SupportedExtensions() = %v, want %v", got, want)
	}

	if !r.Supports("Guide.MD") {
		t.Error("extension lookup should be case-insensitive")
	}

	doc, err := r.Convert(context.Background(), "notes.txt", []byte("  plain  \n"))
	if err != nil || doc.Content != "plain" {
		t.Errorf("Convert txt = %+v, %v", doc, err)
	}

	if _, err := r.Convert(context.Background(), "image.png", nil); err == nil {
		t.Error("expected error for unsupported type")
	}
}
