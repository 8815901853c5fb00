// Package knowledge searches the onboarding knowledge base.
package knowledge

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"elevatehub/internal/config"
	"elevatehub/internal/domain"
	"elevatehub/internal/domain/models"
	"elevatehub/internal/domain/services"
)

const (
	titleWeight   = 0.5
	contentWeight = 0.3
	tagWeight     = 0.2
)

// Service implements services.KnowledgeService over an in-memory entry list
type Service struct {
	entries []models.KnowledgeEntry
	logger  *slog.Logger
}

// NewService builds the knowledge base. A later entry with an id already
// seen replaces the earlier one.
func NewService(logger *slog.Logger, sources ...[]models.KnowledgeEntry) services.KnowledgeService {
	index := make(map[string]int)
	var entries []models.KnowledgeEntry
	for _, src := range sources {
		for _, e := range src {
			if i, ok := index[e.ID]; ok {
				logger.Warn("knowledge entry overridden", "id", e.ID)
				entries[i] = e
				continue
			}
			index[e.ID] = len(entries)
			entries = append(entries, e)
		}
	}

	logger.Info("knowledge base initialized", "entries", len(entries))
	return &Service{entries: entries, logger: logger}
}

// Count returns the number of active entries
func (s *Service) Count() int {
	n := 0
	for _, e := range s.entries {
		if e.IsActive {
			n++
		}
	}
	return n
}

// Search scores each active entry that contains the query
func (s *Service) Search(_ context.Context, query, category string, limit int) ([]models.SearchResult, error) {
	if err := validation.Validate(strings.TrimSpace(query),
		validation.Required,
		validation.Length(1, config.MaxSearchQueryLength),
	); err != nil {
		return nil, fmt.Errorf("%w: query: %v", domain.ErrValidation, err)
	}
	if limit <= 0 {
		limit = config.DefaultSearchLimit
	}
	limit = min(limit, config.MaxSearchLimit)

	q := strings.ToLower(query)
	words := strings.Fields(q)

	results := []models.SearchResult{}
	for _, e := range s.entries {
		if !e.IsActive || (category != "" && e.Category != category) {
			continue
		}

		title := strings.ToLower(e.Title)
		content := strings.ToLower(e.Content)
		titleMatch := strings.Contains(title, q)
		contentMatch := strings.Contains(content, q)
		tagMatch := false
		for _, tag := range e.Tags {
			if strings.Contains(strings.ToLower(tag), q) {
				tagMatch = true
				break
			}
		}
		if !titleMatch && !contentMatch && !tagMatch {
			continue
		}

		score := 0.0
		if titleMatch {
			score += titleWeight
		}
		if contentMatch {
			score += contentWeight
		}
		if tagMatch {
			score += tagWeight
		}

		results = append(results, models.SearchResult{
			Entry:            e,
			RelevanceScore:   score,
			Snippet:          snippet(e.Content, config.SnippetLength),
			HighlightedTerms: highlighted(words, title, content, e.Tags),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RelevanceScore > results[j].RelevanceScore
	})
	if len(results) > limit {
		results = results[:limit]
	}

	s.logger.Debug("knowledge search", "query", query, "category", category, "results", len(results))
	return results, nil
}

func snippet(content string, n int) string {
	r := []rune(content)
	if len(r) <= n {
		return content
	}
	return string(r[:n]) + "..."
}

func highlighted(words []string, title, content string, tags []string) []string {
	found := []string{}
	seen := make(map[string]bool)
	for _, w := range words {
		if seen[w] {
			continue
		}
		hit := strings.Contains(title, w) || strings.Contains(content, w)
		for _, tag := range tags {
			if hit {
				break
			}
			hit = strings.Contains(strings.ToLower(tag), w)
		}
		if hit {
			seen[w] = true
			found = append(found, w)
		}
	}
	return found
}
