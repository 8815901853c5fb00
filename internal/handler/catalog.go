package handler

import (
	"net/http"
	"time"

	"elevatehub/internal/domain/models"
	"elevatehub/internal/domain/services"
	"elevatehub/internal/httputil"
)

// Version is reported by / and /health
const Version = "1.0.0"

// QuickActionLister lists the global quick actions
type QuickActionLister interface {
	QuickActions() []models.QuickAction
}

// StatusHandler serves the banner, health and catalog endpoints
type StatusHandler struct {
	classifier   services.IntentClassifier
	quickActions QuickActionLister
	knowledge    services.KnowledgeService
	database     string
	started      time.Time
	now          func() time.Time
}

// NewStatusHandler creates a new status handler. database names the
// session backend reported by /health.
func NewStatusHandler(classifier services.IntentClassifier, quickActions QuickActionLister, knowledge services.KnowledgeService, database string) *StatusHandler {
	return &StatusHandler{
		classifier:   classifier,
		quickActions: quickActions,
		knowledge:    knowledge,
		database:     database,
		started:      time.Now(),
		now:          time.Now,
	}
}

// Root reports the service banner
// GET /
func (h *StatusHandler) Root(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"service":   "ElevateHub Chatbot API",
		"status":    "running",
		"version":   Version,
		"timestamp": h.now().UTC().Format(time.RFC3339),
	})
}

// Health reports component status
// GET /health
func (h *StatusHandler) Health(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"version": Version,
		"services": map[string]interface{}{
			"nlp":            "active",
			"knowledge_base": map[string]interface{}{"status": "active", "entries": h.knowledge.Count()},
			"database":       h.database,
		},
		"timestamp": now.UTC().Format(time.RFC3339),
		"uptime":    now.Sub(h.started).Round(time.Second).String(),
	})
}

// Intents lists the supported intent categories
// GET /intents
func (h *StatusHandler) Intents(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{"intents": h.classifier.SupportedIntents()})
}

// QuickActions lists the global quick actions without their prompts
// GET /quick-actions
func (h *StatusHandler) QuickActions(w http.ResponseWriter, r *http.Request) {
	actions := h.quickActions.QuickActions()
	out := make([]models.QuickAction, len(actions))
	for i, a := range actions {
		a.Prompt = ""
		out[i] = a
	}
	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{"actions": out})
}
