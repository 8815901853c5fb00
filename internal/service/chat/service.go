package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"elevatehub/internal/config"
	"elevatehub/internal/domain"
	"elevatehub/internal/domain/models"
	"elevatehub/internal/domain/repositories"
	"elevatehub/internal/domain/services"
)

// Catalog is the slice of the static catalogue the chat pipeline reads
type Catalog interface {
	QuickActionPrompt(id string) (string, bool)
	Suggestions(intent string) []string
	Project(id string) (*models.ProjectData, bool)
}

// Generators pairs the configured generator with the one used when it fails
type Generators struct {
	Primary  services.ResponseGenerator
	Fallback services.ResponseGenerator
}

// Service implements the ChatService interface
type Service struct {
	sessions   repositories.SessionRepository
	classifier services.IntentClassifier
	analyzer   services.MessageAnalyzer
	generators Generators
	knowledge  services.KnowledgeService
	catalog    Catalog
	tracker    *ContextTracker
	cfg        *config.Config
	logger     *slog.Logger
	now        func() time.Time
}

// NewService creates the chat pipeline
func NewService(
	sessions repositories.SessionRepository,
	classifier services.IntentClassifier,
	analyzer services.MessageAnalyzer,
	generators Generators,
	knowledge services.KnowledgeService,
	catalog Catalog,
	cfg *config.Config,
	logger *slog.Logger,
) services.ChatService {
	if generators.Fallback == nil {
		generators.Fallback = generators.Primary
	}
	return &Service{
		sessions:   sessions,
		classifier: classifier,
		analyzer:   analyzer,
		generators: generators,
		knowledge:  knowledge,
		catalog:    catalog,
		tracker:    NewContextTracker(config.MaxContextHistory),
		cfg:        cfg,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func validateChatRequest(req *models.ChatRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Message,
			validation.Required,
			validation.By(func(interface{}) error {
				if n := len([]rune(strings.TrimSpace(req.Message))); n == 0 || n > config.MaxMessageLength {
					return fmt.Errorf("must be between 1 and %d characters", config.MaxMessageLength)
				}
				return nil
			}),
		),
		validation.Field(&req.UserID,
			validation.Required,
			validation.Length(1, config.MaxUserIDLength),
		),
		validation.Field(&req.SessionID, validation.Length(0, 255)),
	)
}

func validateQuickActionRequest(req *models.QuickActionRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.ActionID, validation.Required),
		validation.Field(&req.UserID,
			validation.Required,
			validation.Length(1, config.MaxUserIDLength),
		),
	)
}

// SendMessage runs one turn of the conversation
func (s *Service) SendMessage(ctx context.Context, req *models.ChatRequest) (*models.ChatResponse, error) {
	start := time.Now()

	if err := validateChatRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	session, created, err := s.sessions.GetOrCreate(ctx, sessionID, req.UserID)
	if err != nil {
		return nil, err
	}
	if session.UserID != req.UserID {
		return nil, fmt.Errorf("session %s: %w", sessionID, domain.ErrForbidden)
	}
	if created {
		s.enforceSessionLimit(ctx, req.UserID, sessionID)
	}

	userMsg := s.userMessage(sessionID, req)
	if err := s.sessions.AddMessage(ctx, sessionID, userMsg); err != nil {
		return nil, fmt.Errorf("store user message: %w", err)
	}

	convCtx := s.buildContext(sessionID, session, req.Context)
	intent := s.classifier.Classify(req.Message, convCtx)

	genReq := &services.GenerateRequest{
		Message:   req.Message,
		Intent:    intent,
		Context:   convCtx,
		History:   lastMessages(session.Messages, s.cfg.ContextWindowSize),
		Knowledge: s.lookupKnowledge(ctx, intent.Keywords),
	}
	content, responseType := s.generate(ctx, genReq)

	botMsg := &models.Message{
		ID:          uuid.NewString(),
		Content:     content,
		Sender:      models.SenderBot,
		Timestamp:   s.now(),
		SessionID:   sessionID,
		MessageType: models.MessageTypeText,
		Metadata: models.JSONMap{
			"intent":        intent.Name,
			"confidence":    intent.Confidence,
			"response_type": responseType,
		},
	}
	if err := s.sessions.AddMessage(ctx, sessionID, botMsg); err != nil {
		return nil, fmt.Errorf("store bot message: %w", err)
	}

	s.recordInteraction(ctx, sessionID, intent.Name, req.Message, content)

	s.logger.Info("chat message handled",
		"session_id", sessionID,
		"user_id", req.UserID,
		"intent", intent.Name,
		"confidence", intent.Confidence,
		"response_type", responseType,
	)

	return &models.ChatResponse{
		Message:        *botMsg,
		SessionID:      sessionID,
		Intent:         intent.Name,
		Confidence:     intent.Confidence,
		Suggestions:    s.catalog.Suggestions(intent.Name),
		Context:        convCtx,
		ResponseTimeMS: time.Since(start).Milliseconds(),
	}, nil
}

func (s *Service) userMessage(sessionID string, req *models.ChatRequest) *models.Message {
	msgType := models.MessageTypeText
	if t, ok := req.Context.String("message_type"); ok {
		switch models.MessageType(t) {
		case models.MessageTypeCode, models.MessageTypeSuggestion, models.MessageTypeError:
			msgType = models.MessageType(t)
		}
	}

	_, metadata := s.analyzer.Process(req.Message, msgType)
	if metadata == nil {
		metadata = models.JSONMap{}
	}
	for _, key := range []string{"source", "action_id"} {
		if v, ok := req.Context[key]; ok {
			metadata[key] = v
		}
	}

	return &models.Message{
		ID:          uuid.NewString(),
		Content:     req.Message,
		Sender:      models.SenderUser,
		Timestamp:   s.now(),
		SessionID:   sessionID,
		MessageType: msgType,
		Metadata:    metadata,
	}
}

// buildContext layers the request context over the session's own state
func (s *Service) buildContext(sessionID string, session *models.Session, reqCtx models.JSONMap) models.JSONMap {
	c := models.JSONMap{
		"session_id":         sessionID,
		"timestamp":          s.now().Format(time.RFC3339),
		"user_preferences":   models.JSONMap{},
		"conversation_state": "active",
	}

	recent := s.tracker.RecentIntents(sessionID, config.RecentIntentWindow)
	if len(recent) == 0 {
		// tracker is process-local; a persisted session keeps its own copy
		if stored, ok := session.Context["recent_intents"]; ok {
			c["recent_intents"] = stored
		}
	} else {
		c["recent_intents"] = recent
	}

	for k, v := range reqCtx {
		c[k] = v
	}

	if projectID, ok := c.String("project_id"); ok && projectID != "" {
		if p, found := s.catalog.Project(projectID); found {
			c["project_name"] = p.Project.Name
			if _, set := c["current_projects"]; !set {
				c["current_projects"] = []string{projectID}
			}
		}
	}
	return c
}

// lookupKnowledge returns the first hit for any matched keyword
func (s *Service) lookupKnowledge(ctx context.Context, keywords []string) []models.SearchResult {
	if s.knowledge == nil {
		return nil
	}
	for _, kw := range keywords {
		results, err := s.knowledge.Search(ctx, kw, "", 1)
		if err != nil {
			s.logger.Warn("knowledge lookup failed", "keyword", kw, "error", err)
			continue
		}
		if len(results) > 0 {
			return results
		}
	}
	return nil
}

func (s *Service) generate(ctx context.Context, req *services.GenerateRequest) (content, responseType string) {
	content, err := s.generators.Primary.Generate(ctx, req)
	if err == nil && strings.TrimSpace(content) != "" {
		return content, "generated"
	}
	s.logger.Warn("response generator failed, using fallback",
		"generator", s.generators.Primary.Name(),
		"error", err,
	)

	content, err = s.generators.Fallback.Generate(ctx, req)
	if err != nil {
		s.logger.Error("fallback generator failed", "generator", s.generators.Fallback.Name(), "error", err)
		return "I'm sorry, I couldn't put together an answer just now. Please try again.", "error"
	}
	return content, "fallback"
}

func (s *Service) recordInteraction(ctx context.Context, sessionID, intent, message, response string) {
	s.tracker.Record(sessionID, models.Interaction{
		Intent:    intent,
		Message:   message,
		Response:  response,
		Timestamp: s.now(),
	})

	interactions := s.tracker.Interactions(sessionID)
	sessionCtx := models.JSONMap{
		"last_intent":       intent,
		"recent_intents":    s.tracker.RecentIntents(sessionID, config.RecentIntentWindow),
		"interaction_count": len(interactions),
	}
	if err := s.sessions.UpdateContext(ctx, sessionID, sessionCtx); err != nil {
		s.logger.Warn("failed to persist session context", "session_id", sessionID, "error", err)
	}
}

// enforceSessionLimit evicts the user's least recently updated sessions
func (s *Service) enforceSessionLimit(ctx context.Context, userID, keepID string) {
	if s.cfg.MaxSessionsPerUser <= 0 {
		return
	}
	sessions, err := s.sessions.ListByUser(ctx, userID, 0)
	if err != nil {
		s.logger.Warn("failed to list sessions for limit", "user_id", userID, "error", err)
		return
	}
	excess := len(sessions) - s.cfg.MaxSessionsPerUser
	for i := len(sessions) - 1; i >= 0 && excess > 0; i-- {
		id := sessions[i].ID
		if id == keepID {
			continue
		}
		if err := s.sessions.Delete(ctx, id, userID); err != nil && !errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn("failed to evict session", "session_id", id, "error", err)
			continue
		}
		s.tracker.Forget(id)
		excess--
		s.logger.Info("evicted session over per-user limit", "session_id", id, "user_id", userID)
	}
}

// QuickAction sends the canned prompt for an action
func (s *Service) QuickAction(ctx context.Context, req *models.QuickActionRequest) (*models.ChatResponse, error) {
	if err := validateQuickActionRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	prompt, ok := s.catalog.QuickActionPrompt(req.ActionID)
	if !ok {
		return nil, domain.NewNotFound("quick action", req.ActionID)
	}

	return s.SendMessage(ctx, &models.ChatRequest{
		Message:   prompt,
		SessionID: req.SessionID,
		UserID:    req.UserID,
		Context: models.JSONMap{
			"source":    "quick_action",
			"action_id": req.ActionID,
		},
	})
}

// ListUserSessions returns the user's sessions, newest first. Sessions idle
// longer than the session timeout are reported inactive.
func (s *Service) ListUserSessions(ctx context.Context, userID string, limit int) ([]models.Session, error) {
	if err := validation.Validate(userID, validation.Required, validation.Length(1, config.MaxUserIDLength)); err != nil {
		return nil, fmt.Errorf("%w: user_id: %v", domain.ErrValidation, err)
	}
	if limit <= 0 {
		limit = config.DefaultSessionListLimit
	}

	sessions, err := s.sessions.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	if s.cfg.SessionTimeout > 0 {
		now := s.now()
		for i := range sessions {
			sessions[i].IsActive = now.Sub(sessions[i].UpdatedAt) < s.cfg.SessionTimeout
		}
	}
	return sessions, nil
}

// GetHistory returns a session's messages
func (s *Service) GetHistory(ctx context.Context, sessionID string) (*models.SessionHistory, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &models.SessionHistory{
		SessionID: session.ID,
		Messages:  session.Messages,
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
	}, nil
}

// DeleteSession removes a session the user owns
func (s *Service) DeleteSession(ctx context.Context, sessionID, userID string) error {
	if err := s.sessions.Delete(ctx, sessionID, userID); err != nil {
		return err
	}
	s.tracker.Forget(sessionID)
	return nil
}

// Cleanup removes sessions idle longer than retention
func (s *Service) Cleanup(ctx context.Context, retention time.Duration) (int, error) {
	cutoff := s.now().Add(-retention)
	n, err := s.sessions.DeleteUpdatedBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleanup sessions: %w", err)
	}
	s.tracker.PruneBefore(cutoff)
	if n > 0 {
		s.logger.Info("cleaned up expired sessions", "count", n, "cutoff", cutoff)
	}
	return n, nil
}

func lastMessages(messages []models.Message, n int) []models.Message {
	if n <= 0 || len(messages) <= n {
		return messages
	}
	return messages[len(messages)-n:]
}
