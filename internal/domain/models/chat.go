package models

import "time"

// Sender identifies who authored a chat message
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// MessageType classifies message content
type MessageType string

const (
	MessageTypeText       MessageType = "text"
	MessageTypeCode       MessageType = "code"
	MessageTypeSuggestion MessageType = "suggestion"
	MessageTypeError      MessageType = "error"
)

// MessageStatus tracks client-side delivery of a message
type MessageStatus string

const (
	StatusSending   MessageStatus = "sending"
	StatusSent      MessageStatus = "sent"
	StatusDelivered MessageStatus = "delivered"
	StatusError     MessageStatus = "error"
)

// Message is a single chat message
type Message struct {
	ID          string        `json:"id"`
	Content     string        `json:"content"`
	Sender      Sender        `json:"sender"`
	Timestamp   time.Time     `json:"timestamp"`
	SessionID   string        `json:"session_id"`
	MessageType MessageType   `json:"message_type"`
	Status      MessageStatus `json:"status,omitempty"`
	Metadata    JSONMap       `json:"metadata"`
}

// Session is a conversation between one user and the assistant
type Session struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Messages    []Message `json:"messages"`
	Context     JSONMap   `json:"context"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	IsActive    bool      `json:"is_active"`
	SessionType string    `json:"session_type"`
}

// SessionHistory is the body of GET /chat/sessions/{session_id}/history
type SessionHistory struct {
	SessionID string    `json:"session_id"`
	Messages  []Message `json:"messages"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ChatRequest is the body of POST /chat
type ChatRequest struct {
	Message   string  `json:"message"`
	SessionID string  `json:"session_id,omitempty"`
	UserID    string  `json:"user_id"`
	Context   JSONMap `json:"context,omitempty"`
}

// QuickActionRequest is the body of POST /chat/quick-action
type QuickActionRequest struct {
	ActionID  string `json:"action_id"`
	SessionID string `json:"session_id,omitempty"`
	UserID    string `json:"user_id"`
}

// ChatResponse is returned by both chat endpoints
type ChatResponse struct {
	Message        Message  `json:"message"`
	SessionID      string   `json:"session_id"`
	Intent         string   `json:"intent"`
	Confidence     float64  `json:"confidence"`
	Suggestions    []string `json:"suggestions"`
	Context        JSONMap  `json:"context"`
	ResponseTimeMS int64    `json:"response_time_ms"`
}

// Interaction is one recorded exchange in a session's context history
type Interaction struct {
	Intent    string    `json:"intent"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}
