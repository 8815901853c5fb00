package handler

import (
	"log/slog"
	"net/http"

	"elevatehub/internal/domain/models"
	"elevatehub/internal/domain/services"
	"elevatehub/internal/httputil"
)

// SettingsHandler handles per-user settings
type SettingsHandler struct {
	settings services.SettingsService
	logger   *slog.Logger
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settings services.SettingsService, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{settings: settings, logger: logger}
}

// GetSettings returns saved settings merged over the defaults
// GET /api/users/{user_id}/settings
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user_id")
	if !requireSameUser(w, r, userID) {
		return
	}

	settings, err := h.settings.Get(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, settings)
}

// SaveSettings replaces the stored settings
// PUT /api/users/{user_id}/settings
func (h *SettingsHandler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user_id")
	if !requireSameUser(w, r, userID) {
		return
	}

	var body models.JSONMap
	if err := httputil.ParseJSON(w, r, &body); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	settings, err := h.settings.Save(r.Context(), userID, body)
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, settings)
}

// UpdateSettings merges a partial update
// PATCH /api/users/{user_id}/settings
func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user_id")
	if !requireSameUser(w, r, userID) {
		return
	}

	var body models.JSONMap
	if err := httputil.ParseJSON(w, r, &body); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	settings, err := h.settings.Update(r.Context(), userID, body)
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, settings)
}

// ResetSettings discards stored settings
// DELETE /api/users/{user_id}/settings
func (h *SettingsHandler) ResetSettings(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user_id")
	if !requireSameUser(w, r, userID) {
		return
	}

	settings, err := h.settings.Reset(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, settings)
}
