package catalog

import "elevatehub/internal/domain/models"

type intentsFile struct {
	Intents []models.IntentCategory `yaml:"intents"`
}

type quickActionsFile struct {
	Actions []models.QuickAction `yaml:"actions"`
}

type suggestionsFile struct {
	Default []string            `yaml:"default"`
	Intents map[string][]string `yaml:"intents"`
}

// Responses holds the canned reply text used by the template generator
type Responses struct {
	FallbackIntent string              `yaml:"fallback_intent"`
	Templates      map[string][]string `yaml:"templates"`
	Additions      map[string]string   `yaml:"additions"`
	DefaultProject string              `yaml:"default_project"`
}

type knowledgeFile struct {
	Entries []models.KnowledgeEntry `yaml:"entries"`
}

// projectsFile ignores the top-level team anchor; each project carries its
// own resolved copy.
type projectsFile struct {
	Projects []models.ProjectData `yaml:"projects"`
}
