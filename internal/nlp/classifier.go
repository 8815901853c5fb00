package nlp

import (
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"elevatehub/internal/domain/models"
)

const (
	keywordWeight = 0.6
	patternWeight = 0.3
	contextWeight = 0.1

	// below this the message is treated as a general help request
	lowConfidence      = 0.3
	fallbackConfidence = 0.5
	fallbackIntent     = "general_help"

	historyLimit = 100
	statsWindow  = 50

	maxOnboardingPhase = 6
)

// Classification is one entry in the classifier's history
type Classification struct {
	Message    string             `json:"message"`
	Intent     string             `json:"intent"`
	Confidence float64            `json:"confidence"`
	Scores     map[string]float64 `json:"scores"`
	Timestamp  time.Time          `json:"timestamp"`
}

// Classifier scores a message against every intent category using keyword
// containment, word-prefix patterns and conversation context
type Classifier struct {
	categories []models.IntentCategory
	patterns   map[string][]*regexp.Regexp
	history    []Classification
	logger     *slog.Logger
	mu         sync.RWMutex
}

// NewClassifier creates a classifier over categories. Order is significant:
// equal scores resolve to the earlier category.
func NewClassifier(categories []models.IntentCategory, logger *slog.Logger) *Classifier {
	c := &Classifier{
		categories: make([]models.IntentCategory, len(categories)),
		patterns:   make(map[string][]*regexp.Regexp, len(categories)),
		logger:     logger,
	}
	copy(c.categories, categories)
	for _, cat := range c.categories {
		c.patterns[cat.Name] = compilePatterns(cat.Keywords)
	}
	return c
}

func compilePatterns(keywords []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(keywords))
	for _, kw := range keywords {
		patterns = append(patterns, regexp.MustCompile(`(?i)(?:^|[^\p{L}\p{N}_])`+regexp.QuoteMeta(kw)+`[\p{L}\p{N}_]*(?:$|[^\p{L}\p{N}_])`))
	}
	return patterns
}

type intentScore struct {
	name  string
	score float64
}

// Classify returns the best matching intent for message
func (c *Classifier) Classify(message string, context models.JSONMap) models.Intent {
	cleaned := Preprocess(message)

	c.mu.RLock()
	scores := make([]intentScore, 0, len(c.categories))
	for _, cat := range c.categories {
		s := keywordWeight*keywordScore(cleaned, cat.Keywords) +
			patternWeight*patternScore(cleaned, c.patterns[cat.Name]) +
			contextWeight*contextScore(cat.Name, context)
		scores = append(scores, intentScore{name: cat.Name, score: min(s, 1.0)})
	}
	c.mu.RUnlock()

	best, confidence := bestIntent(scores)
	if confidence < lowConfidence {
		best = fallbackIntent
		confidence = fallbackConfidence
	}

	c.record(message, best, confidence, scores)
	c.logger.Debug("classified intent", "intent", best, "confidence", fmt.Sprintf("%.2f", confidence))

	return models.Intent{
		Name:       best,
		Confidence: confidence,
		Category:   best,
		Entities:   ExtractEntities(message),
		Keywords:   c.matchedKeywords(best, cleaned),
	}
}

// keywordScore weights each contained keyword by its length
func keywordScore(message string, keywords []string) float64 {
	var total, matched float64
	for _, kw := range keywords {
		w := float64(len(kw))
		total += w
		if strings.Contains(message, strings.ToLower(kw)) {
			matched += w
		}
	}
	if total == 0 {
		return 0
	}
	return matched / total
}

func patternScore(message string, patterns []*regexp.Regexp) float64 {
	if len(patterns) == 0 {
		return 0
	}
	matches := 0
	for _, p := range patterns {
		if p.MatchString(message) {
			matches++
		}
	}
	return float64(matches) / float64(len(patterns))
}

func contextScore(intent string, context models.JSONMap) float64 {
	if len(context) == 0 {
		return 0
	}

	score := 0.0
	if intent == "onboarding" && onboardingPhase(context) < maxOnboardingPhase {
		score += 0.5
	}
	if intent == "project" && !isEmpty(context["current_projects"]) {
		score += 0.3
	}
	for _, recent := range stringList(context["recent_intents"]) {
		if recent == intent {
			score += 0.2
			break
		}
	}
	if source, _ := context.String("source"); source == "quick_action" {
		if actionID, _ := context.String("action_id"); strings.Contains(actionID, intent) {
			score += 0.7
		}
	}
	return min(score, 1.0)
}

// bestIntent picks the top score and widens confidence by half the margin
// over the runner-up
func bestIntent(scores []intentScore) (string, float64) {
	if len(scores) == 0 {
		return fallbackIntent, 0.1
	}

	sorted := make([]intentScore, len(scores))
	copy(sorted, scores)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].score > sorted[j].score })

	best := sorted[0]
	if len(sorted) == 1 {
		return best.name, best.score
	}
	diff := best.score - sorted[1].score
	return best.name, min(best.score+diff*0.5, 1.0)
}

func (c *Classifier) matchedKeywords(intent, cleaned string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	matched := []string{}
	for _, cat := range c.categories {
		if cat.Name != intent {
			continue
		}
		for _, kw := range cat.Keywords {
			if strings.Contains(cleaned, strings.ToLower(kw)) {
				matched = append(matched, kw)
			}
		}
	}
	return matched
}

func (c *Classifier) record(message, intent string, confidence float64, scores []intentScore) {
	byName := make(map[string]float64, len(scores))
	for _, s := range scores {
		byName[s.name] = s.score
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.history = append(c.history, Classification{
		Message:    message,
		Intent:     intent,
		Confidence: confidence,
		Scores:     byName,
		Timestamp:  time.Now().UTC(),
	})
	if len(c.history) > historyLimit {
		c.history = c.history[len(c.history)-historyLimit:]
	}
}

// SupportedIntents returns the categories in classification order
func (c *Classifier) SupportedIntents() []models.IntentCategory {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.IntentCategory, len(c.categories))
	copy(out, c.categories)
	return out
}

// History returns up to limit of the most recent classifications
func (c *Classifier) History(limit int) []Classification {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if limit <= 0 || limit > len(c.history) {
		limit = len(c.history)
	}
	out := make([]Classification, limit)
	copy(out, c.history[len(c.history)-limit:])
	return out
}

// ConfidenceStats summarises confidence per intent over the recent window
func (c *Classifier) ConfidenceStats() map[string]models.ConfidenceStats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	recent := c.history
	if len(recent) > statsWindow {
		recent = recent[len(recent)-statsWindow:]
	}

	stats := make(map[string]models.ConfidenceStats)
	sums := make(map[string]float64)
	for _, h := range recent {
		s, ok := stats[h.Intent]
		if !ok {
			s = models.ConfidenceStats{Min: h.Confidence, Max: h.Confidence}
		}
		s.Min = min(s.Min, h.Confidence)
		s.Max = max(s.Max, h.Confidence)
		s.Count++
		sums[h.Intent] += h.Confidence
		stats[h.Intent] = s
	}
	for name, s := range stats {
		s.Average = sums[name] / float64(s.Count)
		stats[name] = s
	}
	return stats
}

// UpdateCategory adds or replaces an intent category. New categories are
// appended, so they lose ties to every existing one.
func (c *Classifier) UpdateCategory(name string, keywords, examples []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	updated := models.IntentCategory{
		Name:        name,
		Description: "Custom intent: " + name,
		Keywords:    keywords,
		Examples:    examples,
	}
	replaced := false
	for i := range c.categories {
		if c.categories[i].Name == name {
			c.categories[i] = updated
			replaced = true
			break
		}
	}
	if !replaced {
		c.categories = append(c.categories, updated)
	}
	c.patterns[name] = compilePatterns(keywords)

	c.logger.Info("updated intent category", "intent", name, "keywords", len(keywords))
}

// number reads a JSON number that may have arrived as any numeric type
// onboardingPhase reads onboarding_phase, treating a missing one as phase 0.
// A value that is not a number counts as finished.
func onboardingPhase(context models.JSONMap) float64 {
	v, ok := context["onboarding_phase"]
	if !ok {
		return 0
	}
	if phase, ok := number(v); ok {
		return phase
	}
	return maxOnboardingPhase
}

func number(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func isEmpty(v interface{}) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case []string:
		return len(x) == 0
	case []interface{}:
		return len(x) == 0
	case map[string]interface{}:
		return len(x) == 0
	case bool:
		return !x
	default:
		return false
	}
}

func stringList(v interface{}) []string {
	switch x := v.(type) {
	case []string:
		return x
	case []interface{}:
		out := make([]string, 0, len(x))
		for _, item := range x {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
