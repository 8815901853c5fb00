// Package prompt turns a chat turn into provider-neutral model input.
package prompt

import (
	"fmt"
	"strings"

	"elevatehub/internal/domain/models"
	"elevatehub/internal/domain/services"
)

// Role of a turn in the model conversation
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message sent to a model
type Turn struct {
	Role Role
	Text string
}

const basePrompt = `You are the ElevateHub onboarding assistant. You help consultants who have just joined a project find their way around: onboarding progress, technical standards, the insurance domain, their team, project details and tool setup.
Answer briefly and concretely. If you do not know something, say so and point the user to their project lead.`

// System builds the system prompt for a request
func System(req *services.GenerateRequest) string {
	var sb strings.Builder
	sb.WriteString(basePrompt)

	fmt.Fprintf(&sb, "\n\nDetected intent: %s (confidence %.2f).", req.Intent.Name, req.Intent.Confidence)
	if project, ok := req.Context.String("project_name"); ok && project != "" {
		fmt.Fprintf(&sb, "\nThe user is working on the %s project.", project)
	}

	if len(req.Knowledge) > 0 {
		sb.WriteString("\n\nRelevant knowledge base articles:")
		for _, k := range req.Knowledge {
			fmt.Fprintf(&sb, "\n- %s: %s", k.Entry.Title, k.Snippet)
		}
	}
	return sb.String()
}

// Turns converts the session history plus the new message into alternating
// user/assistant turns, starting with the user
func Turns(req *services.GenerateRequest) []Turn {
	turns := make([]Turn, 0, len(req.History)+1)
	for _, m := range req.History {
		if strings.TrimSpace(m.Content) == "" {
			continue
		}
		turns = appendTurn(turns, roleFor(m.Sender), m.Content)
	}
	turns = appendTurn(turns, RoleUser, req.Message)

	for len(turns) > 0 && turns[0].Role != RoleUser {
		turns = turns[1:]
	}
	return turns
}

func roleFor(s models.Sender) Role {
	if s == models.SenderBot {
		return RoleAssistant
	}
	return RoleUser
}

// appendTurn merges consecutive turns of the same role
func appendTurn(turns []Turn, role Role, text string) []Turn {
	if n := len(turns); n > 0 && turns[n-1].Role == role {
		turns[n-1].Text += "\n\n" + text
		return turns
	}
	return append(turns, Turn{Role: role, Text: text})
}
