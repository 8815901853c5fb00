package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

func schemaStatements(t *TableNames) []string {
	return []string{
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id           TEXT PRIMARY KEY,
			user_id      TEXT NOT NULL,
			context      JSONB NOT NULL DEFAULT '{}'::jsonb,
			session_type TEXT NOT NULL DEFAULT 'chat',
			is_active    BOOLEAN NOT NULL DEFAULT TRUE,
			created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`, t.ChatSessions),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %[1]s_user_updated_idx ON %[1]s (user_id, updated_at DESC)`, t.ChatSessions),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %[1]s_updated_idx ON %[1]s (updated_at)`, t.ChatSessions),
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			seq          BIGSERIAL PRIMARY KEY,
			id           TEXT NOT NULL UNIQUE,
			session_id   TEXT NOT NULL REFERENCES %s (id) ON DELETE CASCADE,
			content      TEXT NOT NULL,
			sender       TEXT NOT NULL,
			message_type TEXT NOT NULL DEFAULT 'text',
			metadata     JSONB NOT NULL DEFAULT '{}'::jsonb,
			created_at   TIMESTAMPTZ NOT NULL
		)`, t.ChatMessages, t.ChatSessions),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %[1]s_session_idx ON %[1]s (session_id, seq)`, t.ChatMessages),
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			user_id    TEXT PRIMARY KEY,
			settings   JSONB NOT NULL DEFAULT '{}'::jsonb,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`, t.UserSettings),
	}
}

// CreateSchema creates the chat and settings tables if they do not exist
func CreateSchema(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	for _, stmt := range schemaStatements(tables) {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

// DropSchema drops every table owned by this service for the prefix
func DropSchema(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	for _, name := range []string{tables.ChatMessages, tables.ChatSessions, tables.UserSettings} {
		if _, err := pool.Exec(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", name)); err != nil {
			return fmt.Errorf("drop %s: %w", name, err)
		}
	}
	return nil
}

// ClearData deletes all rows but keeps the tables
func ClearData(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	query := fmt.Sprintf("TRUNCATE %s, %s, %s", tables.ChatMessages, tables.ChatSessions, tables.UserSettings)
	if _, err := pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("clear data: %w", err)
	}
	return nil
}
