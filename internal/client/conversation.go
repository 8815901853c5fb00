package client

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"elevatehub/internal/config"
	"elevatehub/internal/domain/models"
)

// Greeting opens every conversation
const Greeting = "Hello! I'm your ElevateHub AI assistant. I'm here to help you with your onboarding journey, answer questions about the Insurance project, provide coding guidance, and assist with any challenges you might face. How can I help you today?"

// Message sources recorded in metadata
const (
	SourceAPI              = "api"
	SourceLocal            = "local"
	SourceQuickAction      = "quick_action"
	SourceQuickActionAPI   = "quick_action_api"
	SourceQuickActionLocal = "quick_action_local"
)

// Conversation holds the chat view state for one user
type Conversation struct {
	api    *Client
	userID string
	logger *slog.Logger
	now    func() time.Time

	mu               sync.Mutex
	messages         []models.Message
	sessionID        string
	suggestions      []string
	online           bool
	showQuickActions bool
}

// NewConversation starts a conversation with the greeting
func NewConversation(api *Client, userID string, logger *slog.Logger) *Conversation {
	c := &Conversation{
		api:    api,
		userID: userID,
		logger: logger,
		now:    time.Now,
		online: true,
	}
	c.reset()
	return c
}

func (c *Conversation) initialMessages() []models.Message {
	return []models.Message{{
		ID:          "1",
		Content:     Greeting,
		Sender:      models.SenderBot,
		Timestamp:   c.now().Add(-5 * time.Second),
		MessageType: models.MessageTypeText,
		Status:      models.StatusDelivered,
		Metadata:    models.JSONMap{"category": "greeting"},
	}}
}

// caller holds mu, or c is not yet shared
func (c *Conversation) reset() {
	c.messages = c.initialMessages()
	c.showQuickActions = true
}

// Messages returns a snapshot in append order
func (c *Conversation) Messages() []models.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

func (c *Conversation) SessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionID
}

// Suggestions returns at most three follow-up prompts
func (c *Conversation) Suggestions() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.suggestions...)
}

// Online reports the result of the last API call or health check
func (c *Conversation) Online() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.online
}

// ShowQuickActions is true until the first send and again after Clear
func (c *Conversation) ShowQuickActions() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.showQuickActions
}

// CheckHealth probes the API and records the result
func (c *Conversation) CheckHealth(ctx context.Context) bool {
	ok := c.api.Health(ctx)
	c.mu.Lock()
	c.online = ok
	c.mu.Unlock()
	return ok
}

// Clear restores the greeting and shows quick actions again.
// The session id and suggestions are kept.
func (c *Conversation) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset()
}

// UseSuggestion returns suggestion i and clears the list
func (c *Conversation) UseSuggestion(i int) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= len(c.suggestions) {
		return "", false
	}
	s := c.suggestions[i]
	c.suggestions = nil
	return s, true
}

// Send posts text to /chat. Blank input is ignored and returns nil.
// Any API failure produces a local reply instead of an error.
func (c *Conversation) Send(ctx context.Context, text string) *models.Message {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	userMsg := c.newUserMessage(text, models.StatusSending, nil)
	c.mu.Lock()
	c.messages = append(c.messages, userMsg)
	c.showQuickActions = false
	sessionID := c.sessionID
	c.mu.Unlock()

	resp, err := c.api.Chat(ctx, models.ChatRequest{
		Message:   text,
		UserID:    c.userID,
		SessionID: sessionID,
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	c.setStatus(userMsg.ID, models.StatusSent)

	if err != nil {
		c.logger.Warn("chat api unavailable, answering locally", "error", err)
		return c.appendFallback(text, "fallback", SourceLocal)
	}
	return c.appendReply(resp, "response", SourceAPI)
}

// SendQuickAction posts action to /chat/quick-action. The user bubble shows
// the action prompt; the offline reply answers that prompt.
func (c *Conversation) SendQuickAction(ctx context.Context, action models.QuickAction) *models.Message {
	userMsg := c.newUserMessage(action.Prompt, models.StatusSent, models.JSONMap{
		"category": action.Category,
		"source":   SourceQuickAction,
	})
	c.mu.Lock()
	c.messages = append(c.messages, userMsg)
	c.showQuickActions = false
	sessionID := c.sessionID
	c.mu.Unlock()

	resp, err := c.api.QuickAction(ctx, models.QuickActionRequest{
		ActionID:  action.ID,
		UserID:    c.userID,
		SessionID: sessionID,
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.logger.Warn("quick action api unavailable, answering locally", "action_id", action.ID, "error", err)
		return c.appendFallback(action.Prompt, action.Category, SourceQuickActionLocal)
	}
	return c.appendReply(resp, action.Category, SourceQuickActionAPI)
}

func (c *Conversation) newUserMessage(text string, status models.MessageStatus, metadata models.JSONMap) models.Message {
	if metadata == nil {
		metadata = models.JSONMap{}
	}
	return models.Message{
		ID:          uuid.NewString(),
		Content:     text,
		Sender:      models.SenderUser,
		Timestamp:   c.now(),
		MessageType: models.MessageTypeText,
		Status:      status,
		Metadata:    metadata,
	}
}

// caller holds mu
func (c *Conversation) setStatus(id string, status models.MessageStatus) {
	for i := range c.messages {
		if c.messages[i].ID == id {
			c.messages[i].Status = status
			return
		}
	}
}

// caller holds mu
func (c *Conversation) appendReply(resp *models.ChatResponse, defaultCategory, source string) *models.Message {
	c.online = true
	if resp.SessionID != "" && resp.SessionID != c.sessionID {
		c.sessionID = resp.SessionID
	}

	category := resp.Intent
	if category == "" {
		category = defaultCategory
	}
	msg := models.Message{
		ID:          resp.Message.ID,
		Content:     resp.Message.Content,
		Sender:      models.SenderBot,
		Timestamp:   resp.Message.Timestamp,
		SessionID:   resp.SessionID,
		MessageType: models.MessageTypeText,
		Status:      models.StatusDelivered,
		Metadata:    models.JSONMap{"category": category, "source": source},
	}
	if resp.Message.MessageType != "" {
		msg.MessageType = resp.Message.MessageType
	}
	c.messages = append(c.messages, msg)

	if len(resp.Suggestions) > 0 {
		n := min(len(resp.Suggestions), config.MaxClientSuggestions)
		c.suggestions = append([]string(nil), resp.Suggestions[:n]...)
	}
	return &msg
}

// caller holds mu
func (c *Conversation) appendFallback(prompt, category, source string) *models.Message {
	c.online = false
	msg := models.Message{
		ID:          uuid.NewString(),
		Content:     Respond(prompt),
		Sender:      models.SenderBot,
		Timestamp:   c.now(),
		MessageType: models.MessageTypeText,
		Status:      models.StatusDelivered,
		Metadata:    models.JSONMap{"category": category, "source": source},
	}
	c.messages = append(c.messages, msg)
	return &msg
}
