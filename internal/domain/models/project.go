package models

// Project is a client engagement a new joiner can be assigned to
type Project struct {
	ID            string      `json:"id" yaml:"id"`
	Name          string      `json:"name" yaml:"name"`
	Client        string      `json:"client" yaml:"client"`
	Description   string      `json:"description" yaml:"description"`
	Status        string      `json:"status" yaml:"status"`
	Priority      string      `json:"priority" yaml:"priority"`
	StartDate     string      `json:"start_date" yaml:"start_date"`
	EndDate       string      `json:"end_date" yaml:"end_date"`
	RequiredHours int         `json:"required_hours" yaml:"required_hours"`
	LoggedHours   int         `json:"logged_hours" yaml:"logged_hours"`
	Progress      int         `json:"progress" yaml:"progress"`
	Lead          TeamMember  `json:"lead" yaml:"lead"`
	Technologies  []string    `json:"technologies" yaml:"technologies"`
	Milestones    []Milestone `json:"milestones" yaml:"milestones"`
}

// Milestone is a dated project checkpoint
type Milestone struct {
	Name      string `json:"name" yaml:"name"`
	Date      string `json:"date" yaml:"date"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// TeamMember is a person in the project directory
type TeamMember struct {
	ID         string   `json:"id" yaml:"id"`
	Name       string   `json:"name" yaml:"name"`
	Role       string   `json:"role" yaml:"role"`
	Department string   `json:"department,omitempty" yaml:"department"`
	Location   string   `json:"location,omitempty" yaml:"location"`
	Email      string   `json:"email,omitempty" yaml:"email"`
	Skills     []string `json:"skills,omitempty" yaml:"skills"`
	Bio        string   `json:"bio,omitempty" yaml:"bio"`
}

// SkillLevel is a coarse self-assessment bucket
type SkillLevel string

const (
	SkillStrong           SkillLevel = "strong"
	SkillOkay             SkillLevel = "okay"
	SkillNeedsImprovement SkillLevel = "needs-improvement"
)

// NormalizeSkillLevel maps legacy spellings onto the three known levels.
func NormalizeSkillLevel(level string) SkillLevel {
	switch level {
	case "strong":
		return SkillStrong
	case "okay":
		return SkillOkay
	case "needs-work", "needs-improvement":
		return SkillNeedsImprovement
	default:
		return SkillLevel(level)
	}
}

// Skill is one competency assessed for a project.
// Level and Proficiency are independent inputs and are not reconciled.
type Skill struct {
	Name        string     `json:"name" yaml:"name"`
	Category    string     `json:"category" yaml:"category"`
	Level       SkillLevel `json:"level" yaml:"level"`
	Proficiency int        `json:"proficiency" yaml:"proficiency"`
	Priority    string     `json:"priority" yaml:"priority"`
	Relevance   string     `json:"relevance" yaml:"relevance"`
}

// Tool statuses
const (
	ToolInstalled   = "installed"
	ToolPending     = "pending"
	ToolRequested   = "requested"
	ToolRecommended = "recommended"
	ToolDeprecated  = "deprecated"
)

// Tool is a piece of software in a project's toolkit
type Tool struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Category    string `json:"category" yaml:"category"`
	Version     string `json:"version" yaml:"version"`
	Status      string `json:"status" yaml:"status"`
	Description string `json:"description" yaml:"description"`
	Size        string `json:"size" yaml:"size"`
	InstallDate string `json:"install_date,omitempty" yaml:"install_date"`
	LastUsed    string `json:"last_used,omitempty" yaml:"last_used"`
	Required    bool   `json:"required" yaml:"required"`
	License     string `json:"license" yaml:"license"`
}

// OnboardingTask is a checklist item inside a phase
type OnboardingTask struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Completed   bool   `json:"completed" yaml:"completed"`
	Description string `json:"description,omitempty" yaml:"description"`
}

// OnboardingPhase is one stage of a project onboarding plan
type OnboardingPhase struct {
	ID          int              `json:"id" yaml:"id"`
	Title       string           `json:"title" yaml:"title"`
	Description string           `json:"description" yaml:"description"`
	Status      string           `json:"status" yaml:"status"` // completed, current, upcoming
	Duration    string           `json:"duration" yaml:"duration"`
	Tasks       []OnboardingTask `json:"tasks" yaml:"tasks"`
}

// Onboarding is a project's onboarding plan
type Onboarding struct {
	Phases          []OnboardingPhase `json:"phases" yaml:"phases"`
	OverallProgress int               `json:"overall_progress" yaml:"overall_progress"`
}

// CurrentPhase returns the phase marked current, if any.
func (o Onboarding) CurrentPhase() (OnboardingPhase, bool) {
	for _, p := range o.Phases {
		if p.Status == "current" {
			return p, true
		}
	}
	return OnboardingPhase{}, false
}

// BotContext primes the assistant for a project
type BotContext struct {
	Name            string   `json:"name" yaml:"name"`
	Domain          string   `json:"domain" yaml:"domain"`
	KeyAreas        []string `json:"key_areas" yaml:"key_areas"`
	CommonQuestions []string `json:"common_questions" yaml:"common_questions"`
}

// ProjectBot holds project-specific assistant configuration
type ProjectBot struct {
	QuickActions []QuickAction `json:"quick_actions" yaml:"quick_actions"`
	Context      BotContext    `json:"context" yaml:"context"`
	Suggestions  []string      `json:"suggestions" yaml:"suggestions"`
}

// ProjectData bundles everything the dashboard shows for one project
type ProjectData struct {
	Project    Project      `json:"project" yaml:"project"`
	Team       []TeamMember `json:"team" yaml:"team"`
	Skills     []Skill      `json:"skills" yaml:"skills"`
	Tools      []Tool       `json:"tools" yaml:"tools"`
	Onboarding Onboarding   `json:"onboarding" yaml:"onboarding"`
	Bot        ProjectBot   `json:"bot" yaml:"bot"`
}

// ProjectSummary is the list view of a project
type ProjectSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Client   string `json:"client"`
	Status   string `json:"status"`
	Priority string `json:"priority"`
	Progress int    `json:"progress"`
	Lead     string `json:"lead"`
}
