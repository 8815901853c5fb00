// Package converter turns knowledge base source files into entry text.
package converter

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Document is a converted file. Title, Category and Tags are empty unless the
// source declared them.
type Document struct {
	Title    string
	Category string
	Tags     []string
	Content  string
}

// Converter converts one family of file formats
type Converter interface {
	Convert(ctx context.Context, input []byte) (*Document, error)
	SupportedExtensions() []string
	Name() string
}

// Registry routes files to converters by extension.
// Thread-safe for concurrent access.
type Registry struct {
	mu         sync.RWMutex
	converters map[string]Converter // key: file extension (e.g., ".html")
}

// NewRegistry creates a registry with the markdown, text and HTML converters
func NewRegistry() *Registry {
	registry := &Registry{
		converters: make(map[string]Converter),
	}

	registry.Register(NewMarkdownConverter())
	registry.Register(NewTextConverter())
	registry.Register(NewHTMLConverter())

	return registry
}

// Register associates a converter with its extensions.
// Extensions are normalized to lowercase with leading dot.
func (r *Registry) Register(converter Converter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ext := range converter.SupportedExtensions() {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		r.converters[ext] = converter
	}
}

// Get returns the converter for an extension, or nil. Lookup is case-insensitive.
func (r *Registry) Get(fileExt string) Converter {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.converters[strings.ToLower(fileExt)]
}

// Supports reports whether filename has a registered extension
func (r *Registry) Supports(filename string) bool {
	return r.Get(filepath.Ext(filename)) != nil
}

// Convert picks the converter for filename's extension
func (r *Registry) Convert(ctx context.Context, filename string, content []byte) (*Document, error) {
	ext := filepath.Ext(filename)
	converter := r.Get(ext)
	if converter == nil {
		return nil, fmt.Errorf("unsupported file type: %s", ext)
	}

	doc, err := converter.Convert(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("%s converter: %w", converter.Name(), err)
	}
	return doc, nil
}

// SupportedExtensions returns all registered file extensions, sorted
func (r *Registry) SupportedExtensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exts := make([]string, 0, len(r.converters))
	for ext := range r.converters {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
