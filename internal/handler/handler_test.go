package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elevatehub/internal/catalog"
	"elevatehub/internal/config"
	"elevatehub/internal/domain/models"
	"elevatehub/internal/httputil"
	"elevatehub/internal/nlp"
	"elevatehub/internal/repository/memory"
	"elevatehub/internal/service/auth"
	"elevatehub/internal/service/chat"
	"elevatehub/internal/service/knowledge"
	"elevatehub/internal/service/project"
	"elevatehub/internal/service/settings"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	reg, err := catalog.NewRegistry()
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.NewStore()
	sessions := memory.NewSessionRepository(store, logger)
	classifier := nlp.NewClassifier(reg.Intents(), logger)
	templates := nlp.NewTemplateGenerator(reg)
	kb := knowledge.NewService(logger, reg.KnowledgeEntries())

	cfg := &config.Config{
		SessionTimeout:     30 * time.Minute,
		MaxSessionsPerUser: 10,
		ContextWindowSize:  10,
	}
	chatSvc := chat.NewService(sessions, classifier, nlp.NewAnalyzer(),
		chat.Generators{Primary: templates}, kb, reg, cfg, logger)

	mux := http.NewServeMux()
	RegisterRoutes(mux, Handlers{
		Status:    NewStatusHandler(classifier, reg, kb, "memory"),
		Chat:      NewChatHandler(chatSvc, auth.NewOwnerBasedAuthorizer(sessions), logger),
		Knowledge: NewKnowledgeHandler(kb, logger),
		Project:   NewProjectHandler(project.NewService(reg, logger)),
		Settings:  NewSettingsHandler(settings.NewService(memory.NewSettingsRepository(store), memory.NewTransactionManager(store), logger), logger),
	})
	return mux
}

func do(t *testing.T, mux http.Handler, method, path string, body interface{}, userID string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if userID != "" {
		req = httputil.WithUserID(req, userID)
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dest))
}

func TestRootAndHealth(t *testing.T) {
	mux := newTestMux(t)

	rec := do(t, mux, http.MethodGet, "/", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var banner map[string]interface{}
	decode(t, rec, &banner)
	assert.Equal(t, "ElevateHub Chatbot API", banner["service"])
	assert.Equal(t, "running", banner["status"])
	assert.Equal(t, Version, banner["version"])

	rec = do(t, mux, http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var health map[string]interface{}
	decode(t, rec, &health)
	assert.Equal(t, "healthy", health["status"])
	svcs, ok := health["services"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "active", svcs["nlp"])
	assert.Equal(t, "memory", svcs["database"])
	assert.Contains(t, health, "uptime")

	rec = do(t, mux, http.MethodGet, "/nowhere", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestIntentsAndQuickActions(t *testing.T) {
	mux := newTestMux(t)

	rec := do(t, mux, http.MethodGet, "/intents", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var intents struct {
		Intents []models.IntentCategory `json:"intents"`
	}
	decode(t, rec, &intents)
	assert.NotEmpty(t, intents.Intents)

	rec = do(t, mux, http.MethodGet, "/quick-actions", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var actions struct {
		Actions []models.QuickAction `json:"actions"`
	}
	decode(t, rec, &actions)
	require.Len(t, actions.Actions, 6)
	for _, a := range actions.Actions {
		assert.Empty(t, a.Prompt, "prompt leaked for %s", a.ID)
	}
}

func TestChatFlow(t *testing.T) {
	mux := newTestMux(t)

	rec := do(t, mux, http.MethodPost, "/chat", models.ChatRequest{
		Message: "How do I start my onboarding?",
		UserID:  "alice",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp models.ChatResponse
	decode(t, rec, &resp)
	require.NotEmpty(t, resp.SessionID)
	assert.Equal(t, models.SenderBot, resp.Message.Sender)
	assert.NotEmpty(t, resp.Message.Content)

	rec = do(t, mux, http.MethodGet, "/chat/sessions/alice", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Sessions []models.Session `json:"sessions"`
	}
	decode(t, rec, &list)
	require.Len(t, list.Sessions, 1)
	assert.Equal(t, resp.SessionID, list.Sessions[0].ID)

	rec = do(t, mux, http.MethodGet, "/chat/sessions/"+resp.SessionID+"/history", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var history models.SessionHistory
	decode(t, rec, &history)
	assert.Equal(t, resp.SessionID, history.SessionID)
	assert.Len(t, history.Messages, 2)

	// another authenticated user cannot read the history
	rec = do(t, mux, http.MethodGet, "/chat/sessions/"+resp.SessionID+"/history", nil, "mallory")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(t, mux, http.MethodDelete, "/chat/sessions/"+resp.SessionID+"?user_id=mallory", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, mux, http.MethodDelete, "/chat/sessions/"+resp.SessionID+"?user_id=alice", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var deleted map[string]string
	decode(t, rec, &deleted)
	assert.Equal(t, "Session deleted successfully", deleted["message"])

	rec = do(t, mux, http.MethodGet, "/chat/sessions/"+resp.SessionID+"/history", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChatErrors(t *testing.T) {
	mux := newTestMux(t)

	tests := []struct {
		name   string
		path   string
		body   interface{}
		status int
	}{
		{"empty message", "/chat", models.ChatRequest{Message: "   ", UserID: "alice"}, http.StatusBadRequest},
		{"missing user", "/chat", models.ChatRequest{Message: "hi"}, http.StatusBadRequest},
		{"bad json", "/chat", "not an object", http.StatusBadRequest},
		{"unknown action", "/chat/quick-action", models.QuickActionRequest{ActionID: "nope", UserID: "alice"}, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, mux, http.MethodPost, tt.path, tt.body, "")
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestQuickActionUsesAuthenticatedUser(t *testing.T) {
	mux := newTestMux(t)

	rec := do(t, mux, http.MethodPost, "/chat/quick-action", models.QuickActionRequest{
		ActionID: "onboarding-help",
		UserID:   "claimed",
	}, "bob")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, mux, http.MethodGet, "/chat/sessions/bob", nil, "bob")
	var list struct {
		Sessions []models.Session `json:"sessions"`
	}
	decode(t, rec, &list)
	assert.Len(t, list.Sessions, 1)

	rec = do(t, mux, http.MethodGet, "/chat/sessions/claimed", nil, "bob")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSessionsRejectsBadLimit(t *testing.T) {
	rec := do(t, newTestMux(t), http.MethodGet, "/chat/sessions/alice?limit=ten", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestKnowledgeSearch(t *testing.T) {
	mux := newTestMux(t)

	rec := do(t, mux, http.MethodGet, "/knowledge/search?query=onboarding", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Results []models.SearchResult `json:"results"`
	}
	decode(t, rec, &body)
	assert.NotEmpty(t, body.Results)

	rec = do(t, mux, http.MethodGet, "/knowledge/search?query=zzzzqqq", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"results":[]}`, rec.Body.String())

	rec = do(t, mux, http.MethodGet, "/knowledge/search", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, mux, http.MethodGet, "/knowledge/search?query=x&limit=abc", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProjects(t *testing.T) {
	mux := newTestMux(t)

	rec := do(t, mux, http.MethodGet, "/api/projects", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var summaries []models.ProjectSummary
	decode(t, rec, &summaries)
	assert.Len(t, summaries, 2)

	rec = do(t, mux, http.MethodGet, "/api/projects/insurance-2024", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var data models.ProjectData
	decode(t, rec, &data)
	assert.Equal(t, "insurance-2024", data.Project.ID)

	rec = do(t, mux, http.MethodGet, "/api/projects/insurance-2024/team?department=leadership", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var team []models.TeamMember
	decode(t, rec, &team)
	assert.Len(t, team, 3)

	rec = do(t, mux, http.MethodGet, "/api/projects/missing", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, mux, http.MethodGet, "/api/projects/missing/tools", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSettingsLifecycle(t *testing.T) {
	mux := newTestMux(t)
	path := "/api/users/alice/settings"

	rec := do(t, mux, http.MethodGet, path, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]interface{}
	decode(t, rec, &got)
	assert.Equal(t, "dark", got["theme"])

	rec = do(t, mux, http.MethodPatch, path, map[string]interface{}{"theme": "light"}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	got = nil
	decode(t, rec, &got)
	assert.Equal(t, "light", got["theme"])
	assert.Equal(t, "blue", got["colorScheme"])

	rec = do(t, mux, http.MethodPut, path, map[string]interface{}{"theme": "light", "custom": "kept"}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, mux, http.MethodGet, path, nil, "")
	got = nil
	decode(t, rec, &got)
	assert.Equal(t, "kept", got["custom"])

	rec = do(t, mux, http.MethodDelete, path, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	got = nil
	decode(t, rec, &got)
	assert.Equal(t, "dark", got["theme"])
	assert.NotContains(t, got, "custom")

	rec = do(t, mux, http.MethodGet, path, nil, "bob")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
