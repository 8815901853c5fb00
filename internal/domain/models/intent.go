package models

// Intent is the result of classifying one message
type Intent struct {
	Name       string              `json:"name"`
	Confidence float64             `json:"confidence"`
	Category   string              `json:"category"`
	Entities   map[string][]string `json:"entities"`
	Keywords   []string            `json:"keywords"`
}

// IntentCategory describes a supported intent
type IntentCategory struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Keywords    []string `json:"keywords" yaml:"keywords"`
	Examples    []string `json:"examples" yaml:"examples"`
}

// ConfidenceStats summarises recent classifications of one intent
type ConfidenceStats struct {
	Average float64 `json:"avg_confidence"`
	Min     float64 `json:"min_confidence"`
	Max     float64 `json:"max_confidence"`
	Count   int     `json:"count"`
}

// QuickAction is a canned prompt offered in the chat view
type QuickAction struct {
	ID          string `json:"id" yaml:"id"`
	Label       string `json:"label" yaml:"label"`
	Category    string `json:"category" yaml:"category"`
	Description string `json:"description" yaml:"description"`
	Prompt      string `json:"prompt,omitempty" yaml:"prompt"`
}
