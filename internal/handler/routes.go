package handler

import "net/http"

// Handlers groups every HTTP handler the server mounts
type Handlers struct {
	Status    *StatusHandler
	Chat      *ChatHandler
	Knowledge *KnowledgeHandler
	Project   *ProjectHandler
	Settings  *SettingsHandler
}

// RegisterRoutes mounts the API on mux
func RegisterRoutes(mux *http.ServeMux, h Handlers) {
	mux.HandleFunc("GET /{$}", h.Status.Root)
	mux.HandleFunc("GET /health", h.Status.Health)
	mux.HandleFunc("GET /intents", h.Status.Intents)
	mux.HandleFunc("GET /quick-actions", h.Status.QuickActions)

	// Chat
	mux.HandleFunc("POST /chat", h.Chat.SendMessage)
	mux.HandleFunc("POST /chat/quick-action", h.Chat.QuickAction)
	mux.HandleFunc("GET /chat/sessions/{rest...}", h.Chat.GetSessions)
	mux.HandleFunc("DELETE /chat/sessions/{session_id}", h.Chat.DeleteSession)

	mux.HandleFunc("GET /knowledge/search", h.Knowledge.Search)

	// Projects
	mux.HandleFunc("GET /api/projects", h.Project.ListProjects)
	mux.HandleFunc("GET /api/projects/{id}", h.Project.GetProject)
	mux.HandleFunc("GET /api/projects/{id}/team", h.Project.GetTeam)
	mux.HandleFunc("GET /api/projects/{id}/skills", h.Project.GetSkills)
	mux.HandleFunc("GET /api/projects/{id}/tools", h.Project.GetTools)

	// Settings
	mux.HandleFunc("GET /api/users/{user_id}/settings", h.Settings.GetSettings)
	mux.HandleFunc("PUT /api/users/{user_id}/settings", h.Settings.SaveSettings)
	mux.HandleFunc("PATCH /api/users/{user_id}/settings", h.Settings.UpdateSettings)
	mux.HandleFunc("DELETE /api/users/{user_id}/settings", h.Settings.ResetSettings)
}
