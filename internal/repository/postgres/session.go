package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"elevatehub/internal/domain"
	"elevatehub/internal/domain/models"
	"elevatehub/internal/domain/repositories"
)

// PostgresSessionRepository implements the SessionRepository interface
type PostgresSessionRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	tx     repositories.TransactionManager
	logger *slog.Logger
}

// NewSessionRepository creates a new PostgresSessionRepository
func NewSessionRepository(config *RepositoryConfig) repositories.SessionRepository {
	return &PostgresSessionRepository{
		pool:   config.Pool,
		tables: config.Tables,
		tx:     NewTransactionManager(config),
		logger: config.Logger,
	}
}

const sessionColumns = "id, user_id, context, session_type, is_active, created_at, updated_at"

func scanSession(row pgx.Row, s *models.Session, extra ...any) error {
	dest := append([]any{
		&s.ID,
		&s.UserID,
		&s.Context,
		&s.SessionType,
		&s.IsActive,
		&s.CreatedAt,
		&s.UpdatedAt,
	}, extra...)
	return row.Scan(dest...)
}

// GetOrCreate inserts the session or refreshes updated_at on an existing
// one. A session owned by another user is returned untouched so the caller
// can reject it.
func (r *PostgresSessionRepository) GetOrCreate(ctx context.Context, id, userID string) (*models.Session, bool, error) {
	query := fmt.Sprintf(`
		INSERT INTO %[1]s (id, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
		ON CONFLICT (id) DO UPDATE SET updated_at = EXCLUDED.updated_at
		WHERE %[1]s.user_id = EXCLUDED.user_id
		RETURNING %[2]s, (xmax = 0) AS inserted
	`, r.tables.ChatSessions, sessionColumns)

	var (
		session  models.Session
		inserted bool
	)
	executor := GetExecutor(ctx, r.pool)
	err := scanSession(executor.QueryRow(ctx, query, id, userID, time.Now().UTC()), &session, &inserted)
	if err != nil {
		if IsPgNoRowsError(err) {
			// conflict with a different owner
			existing, getErr := r.Get(ctx, id)
			return existing, false, getErr
		}
		return nil, false, fmt.Errorf("get or create session: %w", err)
	}

	if inserted {
		session.Messages = []models.Message{}
		r.logger.Info("created session", "session_id", id, "user_id", userID)
		return &session, true, nil
	}

	messages, err := r.messagesFor(ctx, []string{id})
	if err != nil {
		return nil, false, err
	}
	session.Messages = messages[id]
	return &session, false, nil
}

// Get retrieves a session and its messages
func (r *PostgresSessionRepository) Get(ctx context.Context, id string) (*models.Session, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, sessionColumns, r.tables.ChatSessions)

	var session models.Session
	executor := GetExecutor(ctx, r.pool)
	if err := scanSession(executor.QueryRow(ctx, query, id), &session); err != nil {
		if IsPgNoRowsError(err) {
			return nil, domain.NewNotFound("session", id)
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	messages, err := r.messagesFor(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	session.Messages = messages[id]
	return &session, nil
}

// messagesFor loads messages for the given sessions in append order.
// Every requested id is present in the result.
func (r *PostgresSessionRepository) messagesFor(ctx context.Context, sessionIDs []string) (map[string][]models.Message, error) {
	query := fmt.Sprintf(`
		SELECT id, session_id, content, sender, message_type, metadata, created_at
		FROM %s
		WHERE session_id = ANY($1)
		ORDER BY seq
	`, r.tables.ChatMessages)

	out := make(map[string][]models.Message, len(sessionIDs))
	for _, id := range sessionIDs {
		out[id] = []models.Message{}
	}

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, sessionIDs)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.SessionID, &m.Content, &m.Sender, &m.MessageType, &m.Metadata, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		out[m.SessionID] = append(out[m.SessionID], m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate messages: %w", err)
	}
	return out, nil
}

// AddMessage inserts the message and touches the session in one transaction
func (r *PostgresSessionRepository) AddMessage(ctx context.Context, sessionID string, msg *models.Message) error {
	insert := fmt.Sprintf(`
		INSERT INTO %s (id, session_id, content, sender, message_type, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, r.tables.ChatMessages)
	touch := fmt.Sprintf(`UPDATE %s SET updated_at = $2 WHERE id = $1`, r.tables.ChatSessions)

	metadata := msg.Metadata
	if metadata == nil {
		metadata = models.JSONMap{}
	}

	return r.tx.ExecTx(ctx, func(ctx context.Context) error {
		executor := GetExecutor(ctx, r.pool)
		_, err := executor.Exec(ctx, insert,
			msg.ID,
			sessionID,
			msg.Content,
			msg.Sender,
			msg.MessageType,
			metadata,
			msg.Timestamp,
		)
		if err != nil {
			if IsPgForeignKeyError(err) {
				return domain.NewNotFound("session", sessionID)
			}
			return fmt.Errorf("insert message: %w", err)
		}
		if _, err := executor.Exec(ctx, touch, sessionID, time.Now().UTC()); err != nil {
			return fmt.Errorf("touch session: %w", err)
		}
		return nil
	})
}

// UpdateContext replaces the session's context document
func (r *PostgresSessionRepository) UpdateContext(ctx context.Context, sessionID string, sessionCtx models.JSONMap) error {
	query := fmt.Sprintf(`UPDATE %s SET context = $2 WHERE id = $1`, r.tables.ChatSessions)

	if sessionCtx == nil {
		sessionCtx = models.JSONMap{}
	}
	executor := GetExecutor(ctx, r.pool)
	tag, err := executor.Exec(ctx, query, sessionID, sessionCtx)
	if err != nil {
		return fmt.Errorf("update session context: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound("session", sessionID)
	}
	return nil
}

// ListByUser returns the user's sessions, most recently updated first.
// A limit of zero or less returns all of them.
func (r *PostgresSessionRepository) ListByUser(ctx context.Context, userID string, limit int) ([]models.Session, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE user_id = $1
		ORDER BY updated_at DESC
	`, sessionColumns, r.tables.ChatSessions)
	args := []any{userID}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	sessions := []models.Session{}
	for rows.Next() {
		var s models.Session
		if err := scanSession(rows, &s); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	if len(sessions) == 0 {
		return sessions, nil
	}

	ids := make([]string, len(sessions))
	for i := range sessions {
		ids[i] = sessions[i].ID
	}
	messages, err := r.messagesFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range sessions {
		sessions[i].Messages = messages[sessions[i].ID]
	}
	return sessions, nil
}

// Delete removes a session owned by userID; messages cascade
func (r *PostgresSessionRepository) Delete(ctx context.Context, id, userID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1 AND user_id = $2`, r.tables.ChatSessions)

	executor := GetExecutor(ctx, r.pool)
	tag, err := executor.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound("session", id)
	}
	r.logger.Info("deleted session", "session_id", id, "user_id", userID)
	return nil
}

// DeleteUpdatedBefore removes sessions idle since before cutoff
func (r *PostgresSessionRepository) DeleteUpdatedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE updated_at < $1`, r.tables.ChatSessions)

	executor := GetExecutor(ctx, r.pool)
	tag, err := executor.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return int(tag.RowsAffected()), nil
}
