package nlp

import (
	"strings"

	"elevatehub/internal/domain/models"
)

var (
	codeIndicators = []string{
		"```", "def ", "function ", "class ", "import ", "from ",
		"if __name__", "console.log", "println", "{", "}", "[", "]",
	}
	urlIndicators = []string{"http://", "https://", "www.", ".com", ".org", ".net"}

	positiveWords = []string{"good", "great", "excellent", "thanks", "helpful", "awesome"}
	negativeWords = []string{"bad", "terrible", "awful", "hate", "problem", "error", "issue"}

	complexityIndicators = []string{"if ", "for ", "while ", "try ", "catch ", "function ", "class "}
)

// checked in order; the first language with a hit wins
var languageIndicators = []struct {
	language   string
	indicators []string
}{
	{"python", []string{"def ", "import ", "from ", "print(", "__init__"}},
	{"javascript", []string{"function ", "const ", "let ", "var ", "console.log"}},
	{"typescript", []string{"interface ", "type ", "enum ", ": string", ": number"}},
	{"java", []string{"public class", "public static", "System.out.println"}},
	{"sql", []string{"SELECT ", "FROM ", "WHERE ", "INSERT ", "UPDATE "}},
	{"react", []string{"import React", "useState", "useEffect", "jsx", "tsx"}},
}

var suggestionCategories = []struct {
	category string
	keywords []string
}{
	{"technical", []string{"code", "programming", "development", "bug", "fix"}},
	{"onboarding", []string{"onboarding", "start", "begin", "learn", "training"}},
	{"team", []string{"team", "contact", "meeting", "collaboration"}},
	{"project", []string{"project", "deadline", "milestone", "task", "assignment"}},
}

// Analyzer derives message metadata by message type
type Analyzer struct{}

// NewAnalyzer creates a message analyzer
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Process returns the processed content and metadata for a message.
// Unknown types are processed as text.
func (a *Analyzer) Process(content string, messageType models.MessageType) (string, models.JSONMap) {
	switch messageType {
	case models.MessageTypeCode:
		return content, a.codeMetadata(content)
	case models.MessageTypeSuggestion:
		return content, a.suggestionMetadata(content)
	case models.MessageTypeError:
		return content, a.errorMetadata(content)
	default:
		cleaned := CleanText(content)
		return cleaned, a.textMetadata(cleaned)
	}
}

func (a *Analyzer) textMetadata(cleaned string) models.JSONMap {
	return models.JSONMap{
		"word_count":      len(strings.Fields(cleaned)),
		"character_count": len([]rune(cleaned)),
		"contains_code":   containsAny(strings.ToLower(cleaned), codeIndicators),
		"contains_urls":   containsAny(strings.ToLower(cleaned), urlIndicators),
		"language":        "en",
		"sentiment":       Sentiment(cleaned),
	}
}

// Sentiment counts positive against negative cue words
func Sentiment(message string) string {
	lower := strings.ToLower(message)
	pos, neg := countContained(lower, positiveWords), countContained(lower, negativeWords)
	switch {
	case pos > neg:
		return "positive"
	case neg > pos:
		return "negative"
	default:
		return "neutral"
	}
}

// CodeBlock is a fenced block found in a message
type CodeBlock struct {
	Language string `json:"language"`
	Code     string `json:"code"`
}

// ExtractCodeBlocks returns every closed ``` fenced block. An unlabelled
// fence has language "unknown".
func ExtractCodeBlocks(message string) []CodeBlock {
	blocks := []CodeBlock{}
	var (
		inBlock  bool
		language string
		current  []string
	)
	for _, line := range strings.Split(message, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "```") && inBlock:
			blocks = append(blocks, CodeBlock{Language: language, Code: strings.Join(current, "\n")})
			inBlock, current = false, nil
		case strings.HasPrefix(trimmed, "```"):
			inBlock = true
			language = strings.TrimSpace(trimmed[3:])
			if language == "" {
				language = "unknown"
			}
		case inBlock:
			current = append(current, line)
		}
	}
	return blocks
}

// DetectProgrammingLanguage guesses a language from indicator substrings
func DetectProgrammingLanguage(message string) (string, bool) {
	lower := strings.ToLower(message)
	for _, l := range languageIndicators {
		for _, ind := range l.indicators {
			if strings.Contains(lower, strings.ToLower(ind)) {
				return l.language, true
			}
		}
	}
	return "", false
}

func (a *Analyzer) codeMetadata(content string) models.JSONMap {
	blocks := ExtractCodeBlocks(content)

	var language interface{}
	if l, ok := DetectProgrammingLanguage(content); ok {
		language = l
	}

	unbalanced := false
	complexity := 0
	for _, b := range blocks {
		if !bracketsBalanced(b.Code) {
			unbalanced = true
		}
		lower := strings.ToLower(b.Code)
		for _, ind := range complexityIndicators {
			complexity += strings.Count(lower, ind)
		}
	}

	return models.JSONMap{
		"code_blocks":          blocks,
		"programming_language": language,
		"has_syntax_errors":    unbalanced,
		"complexity_score":     complexity,
	}
}

// bracketsBalanced compares opening and closing counts per bracket kind
func bracketsBalanced(code string) bool {
	return strings.Count(code, "(") == strings.Count(code, ")") &&
		strings.Count(code, "{") == strings.Count(code, "}") &&
		strings.Count(code, "[") == strings.Count(code, "]")
}

// ParseSuggestions reads bullet lines, and any other line that does not
// end like a sentence or question
func ParseSuggestions(message string) []string {
	suggestions := []string{}
	for _, line := range strings.Split(message, "\n") {
		line = strings.TrimSpace(line)
		if bullet, ok := trimBullet(line); ok {
			suggestions = append(suggestions, bullet)
			continue
		}
		if line != "" && !strings.HasSuffix(line, ".") && !strings.HasSuffix(line, "?") {
			suggestions = append(suggestions, line)
		}
	}
	return suggestions
}

func trimBullet(line string) (string, bool) {
	for _, b := range []string{"-", "*", "•"} {
		if strings.HasPrefix(line, b) {
			return strings.TrimSpace(strings.TrimPrefix(line, b)), true
		}
	}
	return "", false
}

// CategorizeSuggestion returns the first matching category, or "general"
func CategorizeSuggestion(suggestion string) string {
	lower := strings.ToLower(suggestion)
	for _, c := range suggestionCategories {
		if containsAny(lower, c.keywords) {
			return c.category
		}
	}
	return "general"
}

func (a *Analyzer) suggestionMetadata(content string) models.JSONMap {
	suggestions := ParseSuggestions(content)
	categories := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		categories = append(categories, CategorizeSuggestion(s))
	}
	return models.JSONMap{
		"suggestions":      suggestions,
		"suggestion_count": len(suggestions),
		"categories":       categories,
	}
}

// ClassifyError returns an error type and a severity of low, medium or high
func ClassifyError(message string) (errorType, severity string) {
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "syntax"):
		errorType = "syntax_error"
	case containsAny(lower, []string{"import", "module"}):
		errorType = "import_error"
	case containsAny(lower, []string{"permission", "access"}):
		errorType = "permission_error"
	case containsAny(lower, []string{"connection", "network"}):
		errorType = "connection_error"
	default:
		errorType = "unknown"
	}

	switch {
	case containsAny(lower, []string{"critical", "fatal", "crash"}):
		severity = "high"
	case containsAny(lower, []string{"warning", "minor"}):
		severity = "low"
	default:
		severity = "medium"
	}
	return errorType, severity
}

func (a *Analyzer) errorMetadata(content string) models.JSONMap {
	errorType, severity := ClassifyError(content)
	return models.JSONMap{
		"error_type":  errorType,
		"error_code":  nil,
		"severity":    severity,
		"stack_trace": nil,
	}
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func countContained(s string, subs []string) int {
	n := 0
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			n++
		}
	}
	return n
}
