package models

import "time"

// KnowledgeEntry is one article in the knowledge base
type KnowledgeEntry struct {
	ID        string    `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	Content   string    `json:"content" yaml:"content"`
	Category  string    `json:"category" yaml:"category"`
	Tags      []string  `json:"tags" yaml:"tags"`
	CreatedAt time.Time `json:"created_at" yaml:"-"`
	UpdatedAt time.Time `json:"updated_at" yaml:"-"`
	Version   int       `json:"version" yaml:"version"`
	IsActive  bool      `json:"is_active" yaml:"-"`
}

// SearchResult is a ranked knowledge base hit
type SearchResult struct {
	Entry            KnowledgeEntry `json:"entry"`
	RelevanceScore   float64        `json:"relevance_score"`
	Snippet          string         `json:"snippet"`
	HighlightedTerms []string       `json:"highlighted_terms"`
}

// Knowledge categories
const (
	CategoryOnboardingProcess  = "onboarding_process"
	CategoryTechnicalStandards = "technical_standards"
	CategoryInsuranceDomain    = "insurance_domain"
	CategoryTeamDirectory      = "team_directory"
	CategoryProjectInformation = "project_information"
	CategoryToolsAndSetup      = "tools_and_setup"
	CategoryCompanyPolicies    = "company_policies"
	CategoryTrainingMaterials  = "training_materials"
)

// KnowledgeCategories lists every category an entry may carry
var KnowledgeCategories = []string{
	CategoryOnboardingProcess,
	CategoryTechnicalStandards,
	CategoryInsuranceDomain,
	CategoryTeamDirectory,
	CategoryProjectInformation,
	CategoryToolsAndSetup,
	CategoryCompanyPolicies,
	CategoryTrainingMaterials,
}
