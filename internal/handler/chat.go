package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"elevatehub/internal/config"
	"elevatehub/internal/domain/models"
	"elevatehub/internal/domain/services"
	"elevatehub/internal/httputil"
)

// ChatHandler handles chat HTTP requests
type ChatHandler struct {
	chatService services.ChatService
	authorizer  services.ResourceAuthorizer
	logger      *slog.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService services.ChatService, authorizer services.ResourceAuthorizer, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		authorizer:  authorizer,
		logger:      logger,
	}
}

// SendMessage runs one chat turn
// POST /chat
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.UserID = httputil.ResolveUserID(r, req.UserID)

	resp, err := h.chatService.SendMessage(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, resp)
}

// QuickAction sends a canned prompt
// POST /chat/quick-action
func (h *ChatHandler) QuickAction(w http.ResponseWriter, r *http.Request) {
	var req models.QuickActionRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.UserID = httputil.ResolveUserID(r, req.UserID)

	resp, err := h.chatService.QuickAction(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, resp)
}

// GetSessions serves both GET /chat/sessions/{user_id} and
// GET /chat/sessions/{session_id}/history
func (h *ChatHandler) GetSessions(w http.ResponseWriter, r *http.Request) {
	rest := strings.Trim(r.PathValue("rest"), "/")
	if sessionID, ok := strings.CutSuffix(rest, "/history"); ok && sessionID != "" && !strings.Contains(sessionID, "/") {
		h.history(w, r, sessionID)
		return
	}
	if rest == "" || strings.Contains(rest, "/") {
		httputil.RespondError(w, http.StatusNotFound, "not found")
		return
	}
	h.listSessions(w, r, rest)
}

func (h *ChatHandler) listSessions(w http.ResponseWriter, r *http.Request, userID string) {
	if !requireSameUser(w, r, userID) {
		return
	}

	limit, err := httputil.QueryInt(r, "limit", config.DefaultSessionListLimit)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	sessions, err := h.chatService.ListUserSessions(r.Context(), userID, limit)
	if err != nil {
		handleError(w, err)
		return
	}
	if sessions == nil {
		sessions = []models.Session{}
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{"sessions": sessions})
}

func (h *ChatHandler) history(w http.ResponseWriter, r *http.Request, sessionID string) {
	if userID := httputil.UserID(r); userID != "" && h.authorizer != nil {
		if err := h.authorizer.CanAccessSession(r.Context(), userID, sessionID); err != nil {
			handleError(w, err)
			return
		}
	}

	history, err := h.chatService.GetHistory(r.Context(), sessionID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, history)
}

// DeleteSession removes a session the caller owns
// DELETE /chat/sessions/{session_id}?user_id=
func (h *ChatHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("session_id")
	userID := httputil.ResolveUserID(r, r.URL.Query().Get("user_id"))
	if userID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	if err := h.chatService.DeleteSession(r.Context(), sessionID, userID); err != nil {
		handleError(w, err)
		return
	}

	h.logger.Info("session deleted", "session_id", sessionID, "user_id", userID)
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"message": "Session deleted successfully"})
}
