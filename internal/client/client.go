// Package client talks to the ElevateHub chatbot API and keeps the chat
// view's local state.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"elevatehub/internal/domain/models"
	"elevatehub/internal/httputil"
)

// DefaultBaseURL is where the chatbot API listens in development
const DefaultBaseURL = "http://localhost:8000"

// StatusError is a non-2xx API response
type StatusError struct {
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("api returned %d", e.StatusCode)
	}
	return fmt.Sprintf("api returned %d: %s", e.StatusCode, e.Detail)
}

// Client is an HTTP client for the chatbot API
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithToken sends token as a bearer credential
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// New creates a client for baseURL. An empty baseURL uses DefaultBaseURL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Health reports whether GET /health answered with a 2xx status
func (c *Client) Health(ctx context.Context) bool {
	req, err := c.newRequest(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// Chat sends one message
func (c *Client) Chat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	var out models.ChatResponse
	if err := c.do(ctx, http.MethodPost, "/chat", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// QuickAction sends a canned prompt by id
func (c *Client) QuickAction(ctx context.Context, req models.QuickActionRequest) (*models.ChatResponse, error) {
	var out models.ChatResponse
	if err := c.do(ctx, http.MethodPost, "/chat/quick-action", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// QuickActions lists the server's quick actions. Prompts are not included.
func (c *Client) QuickActions(ctx context.Context) ([]models.QuickAction, error) {
	var out struct {
		Actions []models.QuickAction `json:"actions"`
	}
	if err := c.do(ctx, http.MethodGet, "/quick-actions", nil, &out); err != nil {
		return nil, err
	}
	return out.Actions, nil
}

func (c *Client) Intents(ctx context.Context) ([]models.IntentCategory, error) {
	var out struct {
		Intents []models.IntentCategory `json:"intents"`
	}
	if err := c.do(ctx, http.MethodGet, "/intents", nil, &out); err != nil {
		return nil, err
	}
	return out.Intents, nil
}

// SearchKnowledge queries the knowledge base. Zero limit uses the server default.
func (c *Client) SearchKnowledge(ctx context.Context, query, category string, limit int) ([]models.SearchResult, error) {
	q := url.Values{"query": {query}}
	if category != "" {
		q.Set("category", category)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var out struct {
		Results []models.SearchResult `json:"results"`
	}
	if err := c.do(ctx, http.MethodGet, "/knowledge/search?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

func (c *Client) Projects(ctx context.Context) ([]models.ProjectSummary, error) {
	var out []models.ProjectSummary
	if err := c.do(ctx, http.MethodGet, "/api/projects", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Project(ctx context.Context, id string) (*models.ProjectData, error) {
	var out models.ProjectData
	if err := c.do(ctx, http.MethodGet, "/api/projects/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Sessions lists a user's recent sessions
func (c *Client) Sessions(ctx context.Context, userID string) ([]models.Session, error) {
	var out struct {
		Sessions []models.Session `json:"sessions"`
	}
	if err := c.do(ctx, http.MethodGet, "/chat/sessions/"+url.PathEscape(userID), nil, &out); err != nil {
		return nil, err
	}
	return out.Sessions, nil
}

func (c *Client) History(ctx context.Context, sessionID string) (*models.SessionHistory, error) {
	var out models.SessionHistory
	if err := c.do(ctx, http.MethodGet, "/chat/sessions/"+url.PathEscape(sessionID)+"/history", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body interface{}) (*http.Request, error) {
	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, dest interface{}) error {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &StatusError{StatusCode: resp.StatusCode}
		var problem httputil.ProblemDetail
		if json.Unmarshal(raw, &problem) == nil {
			statusErr.Detail = problem.Detail
		}
		return statusErr
	}

	if dest == nil {
		return nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
