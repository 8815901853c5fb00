package catalog

import (
	"embed"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"elevatehub/internal/domain/models"
)

//go:embed config/*.yaml
var configFiles embed.FS

// Registry serves the static catalogue: intents, quick actions, suggestions,
// response templates, seed knowledge and project data
type Registry struct {
	intents      []models.IntentCategory
	quickActions []models.QuickAction
	suggestions  suggestionsFile
	responses    Responses
	knowledge    []models.KnowledgeEntry
	projects     []models.ProjectData
}

// NewRegistry creates a registry and loads the embedded YAML files.
// The registry is read-only after construction.
func NewRegistry() (*Registry, error) {
	r := &Registry{}

	var intents intentsFile
	if err := loadFile("intents", &intents); err != nil {
		return nil, err
	}
	var actions quickActionsFile
	if err := loadFile("quick_actions", &actions); err != nil {
		return nil, err
	}
	if err := loadFile("suggestions", &r.suggestions); err != nil {
		return nil, err
	}
	if err := loadFile("responses", &r.responses); err != nil {
		return nil, err
	}
	var knowledge knowledgeFile
	if err := loadFile("knowledge", &knowledge); err != nil {
		return nil, err
	}
	var projects projectsFile
	if err := loadFile("projects", &projects); err != nil {
		return nil, err
	}

	r.intents = intents.Intents
	r.quickActions = actions.Actions

	now := time.Now().UTC()
	for i := range knowledge.Entries {
		e := &knowledge.Entries[i]
		e.CreatedAt, e.UpdatedAt = now, now
		e.IsActive = true
		if e.Version == 0 {
			e.Version = 1
		}
	}
	r.knowledge = knowledge.Entries

	for i := range projects.Projects {
		skills := projects.Projects[i].Skills
		for j := range skills {
			skills[j].Level = models.NormalizeSkillLevel(string(skills[j].Level))
		}
	}
	r.projects = projects.Projects

	return r, nil
}

// loadFile decodes config/<name>.yaml into out
func loadFile(name string, out interface{}) error {
	filename := fmt.Sprintf("config/%s.yaml", name)
	data, err := configFiles.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", filename, err)
	}
	return nil
}

// Intents returns the intent categories in classification order
func (r *Registry) Intents() []models.IntentCategory {
	out := make([]models.IntentCategory, len(r.intents))
	copy(out, r.intents)
	return out
}

// QuickActions returns the global quick actions, prompts included
func (r *Registry) QuickActions() []models.QuickAction {
	out := make([]models.QuickAction, len(r.quickActions))
	copy(out, r.quickActions)
	return out
}

// QuickAction looks an action up by id. Global actions win over the
// project-specific ones sharing an id.
func (r *Registry) QuickAction(id string) (models.QuickAction, bool) {

	for _, a := range r.quickActions {
		if a.ID == id {
			return a, true
		}
	}
	for _, p := range r.projects {
		for _, a := range p.Bot.QuickActions {
			if a.ID == id {
				return a, true
			}
		}
	}
	return models.QuickAction{}, false
}

// QuickActionPrompt returns the prompt sent for an action id
func (r *Registry) QuickActionPrompt(id string) (string, bool) {
	a, ok := r.QuickAction(id)
	if !ok || a.Prompt == "" {
		return "", false
	}
	return a.Prompt, true
}

// Suggestions returns follow-ups for an intent, or the default list
func (r *Registry) Suggestions(intent string) []string {

	list, ok := r.suggestions.Intents[intent]
	if !ok || len(list) == 0 {
		list = r.suggestions.Default
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// Template returns the primary response template for an intent, falling
// back to the fallback intent's template
func (r *Registry) Template(intent string) string {

	if t := r.responses.Templates[intent]; len(t) > 0 {
		return t[0]
	}
	if t := r.responses.Templates[r.responses.FallbackIntent]; len(t) > 0 {
		return t[0]
	}
	return ""
}

// Addition returns the context line appended for an intent, with {project}
// expanded
func (r *Registry) Addition(intent, project string) string {

	line := r.responses.Additions[intent]
	if project == "" {
		project = r.responses.DefaultProject
	}
	return strings.ReplaceAll(line, "{project}", project)
}

// DefaultProject is the project name used when the context names none
func (r *Registry) DefaultProject() string {
	return r.responses.DefaultProject
}

// KnowledgeEntries returns copies of the seed knowledge entries
func (r *Registry) KnowledgeEntries() []models.KnowledgeEntry {
	out := make([]models.KnowledgeEntry, len(r.knowledge))
	copy(out, r.knowledge)
	return out
}

// Projects returns all project data in file order
func (r *Registry) Projects() []models.ProjectData {
	out := make([]models.ProjectData, len(r.projects))
	copy(out, r.projects)
	return out
}

// Project returns one project's data
func (r *Registry) Project(id string) (*models.ProjectData, bool) {
	for i := range r.projects {
		if r.projects[i].Project.ID == id {
			p := r.projects[i]
			return &p, true
		}
	}
	return nil, false
}
