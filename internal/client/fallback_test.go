package client

import (
	"strings"
	"testing"
)

func TestRespond(t *testing.T) {
	tests := []struct {
		name    string
		message string
		prefix  string
	}{
		{"onboarding", "Where do I START?", "Great! Let me help you with your onboarding."},
		{"onboarding wins over team", "onboarding team contact", "Great! Let me help you with your onboarding."},
		{"insurance", "explain the insurance domain", "The Insurance project focuses"},
		{"team", "who is on my team", "Your team structure includes"},
		{"code", "coding standards please", "Our coding standards include"},
		{"tools", "what tools do I need", "For the Insurance project, you'll need"},
		{"help", "I'm stuck", "I'm here to help!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Respond(tt.message); !strings.HasPrefix(got, tt.prefix) {
				t.Errorf("Respond(%q) = %q, want prefix %q", tt.message, got, tt.prefix)
			}
		})
	}
}

func TestRespondEchoesOriginalInput(t *testing.T) {
	got := Respond("What's the Lunch Menu?")
	if !strings.Contains(got, "'What's the Lunch Menu?'") {
		t.Errorf("echo lost the original casing: %q", got)
	}
}
