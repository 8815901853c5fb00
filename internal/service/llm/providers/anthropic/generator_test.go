package anthropic

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/anthropics/anthropic-sdk-go/option"

	"elevatehub/internal/domain/models"
	"elevatehub/internal/domain/services"
)

func TestNewGeneratorValidates(t *testing.T) {
	if _, err := NewGenerator("", "claude-haiku-4-5", 100, 0.5); err == nil {
		t.Error("expected error for missing API key")
	}
	if _, err := NewGenerator("key", "lorem-fast", 100, 0.5); err == nil {
		t.Error("expected error for unsupported model")
	}
}

func TestGenerate(t *testing.T) {
	var body map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/messages") {
			http.NotFound(w, r)
			return
		}
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"id": "msg_1",
			"type": "message",
			"role": "assistant",
			"model": "claude-haiku-4-5",
			"content": [{"type": "text", "text": "Your lead is Sarin."}],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 10, "output_tokens": 5}
		}`)
	}))
	defer srv.Close()

	g, err := NewGenerator("test-key", "claude-haiku-4-5", 200, 0.2,
		option.WithBaseURL(srv.URL),
		option.WithMaxRetries(0),
	)
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}

	got, err := g.Generate(context.Background(), &services.GenerateRequest{
		Message: "Who is my lead?",
		Intent:  models.Intent{Name: "team", Confidence: 0.9},
		History: []models.Message{
			{Sender: models.SenderUser, Content: "hi"},
			{Sender: models.SenderBot, Content: "hello"},
		},
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if got != "Your lead is Sarin." {
		t.Errorf("Generate() = %q", got)
	}

	if body["model"] != "claude-haiku-4-5" {
		t.Errorf("model = %v", body["model"])
	}
	if msgs, ok := body["messages"].([]interface{}); !ok || len(msgs) != 3 {
		t.Errorf("messages = %v, want 3 turns", body["messages"])
	}
	if _, ok := body["system"]; !ok {
		t.Error("system prompt not sent")
	}
}
