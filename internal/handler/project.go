package handler

import (
	"net/http"

	"elevatehub/internal/domain/services"
	"elevatehub/internal/httputil"
)

// ProjectHandler serves project dashboard data
type ProjectHandler struct {
	projects services.ProjectService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projects services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// ListProjects returns project summaries
// GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.projects.List(r.Context()))
}

// GetProject returns everything for one project
// GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	data, err := h.projects.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, data)
}

// GET /api/projects/{id}/team?department=&q=
func (h *ProjectHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	filter := services.TeamFilter{
		Department: r.URL.Query().Get("department"),
		Query:      r.URL.Query().Get("q"),
	}
	team, err := h.projects.Team(r.Context(), r.PathValue("id"), filter)
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, team)
}

// GET /api/projects/{id}/skills?level=
func (h *ProjectHandler) GetSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := h.projects.Skills(r.Context(), r.PathValue("id"), r.URL.Query().Get("level"))
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, skills)
}

// GET /api/projects/{id}/tools?status=
func (h *ProjectHandler) GetTools(w http.ResponseWriter, r *http.Request) {
	tools, err := h.projects.Tools(r.Context(), r.PathValue("id"), r.URL.Query().Get("status"))
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, tools)
}
