package handler

import (
	"log/slog"
	"net/http"

	"elevatehub/internal/config"
	"elevatehub/internal/domain/models"
	"elevatehub/internal/domain/services"
	"elevatehub/internal/httputil"
)

// KnowledgeHandler handles knowledge base searches
type KnowledgeHandler struct {
	knowledge services.KnowledgeService
	logger    *slog.Logger
}

// NewKnowledgeHandler creates a new knowledge handler
func NewKnowledgeHandler(knowledge services.KnowledgeService, logger *slog.Logger) *KnowledgeHandler {
	return &KnowledgeHandler{knowledge: knowledge, logger: logger}
}

// Search runs a substring search
// GET /knowledge/search?query=&category=&limit=
func (h *KnowledgeHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, err := httputil.QueryInt(r, "limit", config.DefaultSearchLimit)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	results, err := h.knowledge.Search(r.Context(), q.Get("query"), q.Get("category"), limit)
	if err != nil {
		handleError(w, err)
		return
	}
	if results == nil {
		results = []models.SearchResult{}
	}

	h.logger.Debug("knowledge search", "query", q.Get("query"), "results", len(results))
	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{"results": results})
}
