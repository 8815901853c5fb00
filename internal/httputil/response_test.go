package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondErrorWithExtras(rec, http.StatusTooManyRequests, "slow down", map[string]interface{}{"retry_after": 3})

	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("content type = %q", ct)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["title"] != "Too Many Requests" || body["detail"] != "slow down" || body["retry_after"] != float64(3) {
		t.Errorf("body = %v", body)
	}
	if !strings.Contains(body["type"].(string), "rfc6585") {
		t.Errorf("type = %v", body["type"])
	}
}

func TestQueryInt(t *testing.T) {
	tests := []struct {
		query   string
		want    int
		wantErr bool
	}{
		{"", 10, false},
		{"limit=3", 3, false},
		{"limit=abc", 0, true},
	}

	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/x?"+tt.query, nil)
		got, err := QueryInt(r, "limit", 10)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("QueryInt(%q) = %d, %v", tt.query, got, err)
		}
	}
}

func TestResolveUserID(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := ResolveUserID(r, "claimed"); got != "claimed" {
		t.Errorf("anonymous = %q", got)
	}
	r = WithUserID(r, "alice")
	if got := ResolveUserID(r, "claimed"); got != "alice" {
		t.Errorf("authenticated = %q", got)
	}
}
