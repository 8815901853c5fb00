package knowledge

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"elevatehub/internal/domain/models"
	"elevatehub/internal/service/knowledge/converter"
)

// LoadDirectory converts every supported file under dir into an entry.
// The file stem is the id and the default title. Unsupported files are skipped.
func LoadDirectory(ctx context.Context, dir string, registry *converter.Registry, logger *slog.Logger) ([]models.KnowledgeEntry, error) {
	var entries []models.KnowledgeEntry

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !registry.Supports(path) {
			logger.Debug("skipping unsupported knowledge file", "path", path)
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		doc, err := registry.Convert(ctx, path, content)
		if err != nil {
			return fmt.Errorf("convert %s: %w", path, err)
		}
		if doc.Content == "" {
			logger.Warn("skipping empty knowledge file", "path", path)
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return fmt.Errorf("stat %s: %w", path, err)
		}

		entries = append(entries, newEntry(path, doc, info.ModTime().UTC(), logger))
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("knowledge files loaded", "dir", dir, "count", len(entries))
	return entries, nil
}

func newEntry(path string, doc *converter.Document, modified time.Time, logger *slog.Logger) models.KnowledgeEntry {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	title := doc.Title
	if title == "" {
		title = stem
	}

	category := doc.Category
	if !slices.Contains(models.KnowledgeCategories, category) {
		if category != "" {
			logger.Warn("unknown knowledge category, using default", "path", path, "category", category)
		}
		category = models.CategoryTrainingMaterials
	}

	tags := doc.Tags
	if tags == nil {
		tags = []string{}
	}

	return models.KnowledgeEntry{
		ID:        stem,
		Title:     title,
		Content:   doc.Content,
		Category:  category,
		Tags:      tags,
		CreatedAt: modified,
		UpdatedAt: modified,
		Version:   1,
		IsActive:  true,
	}
}
