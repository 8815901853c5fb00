package postgres

import (
	"strings"
	"testing"
)

func TestNewTableNames(t *testing.T) {
	tables := NewTableNames("test_")

	tests := []struct {
		got  string
		want string
	}{
		{tables.ChatSessions, "test_chat_sessions"},
		{tables.ChatMessages, "test_chat_messages"},
		{tables.UserSettings, "test_user_settings"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}

func TestSchemaStatementsUsePrefix(t *testing.T) {
	tables := NewTableNames("dev_")

	for _, stmt := range schemaStatements(tables) {
		if strings.Contains(stmt, " chat_") || strings.Contains(stmt, " user_settings") {
			t.Errorf("statement references an unprefixed table:\n%s", stmt)
		}
		if !strings.Contains(stmt, "dev_") {
			t.Errorf("statement missing prefix:\n%s", stmt)
		}
	}
}
