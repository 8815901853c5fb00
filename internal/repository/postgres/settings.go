package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"elevatehub/internal/domain/models"
	"elevatehub/internal/domain/repositories"
)

// PostgresSettingsRepository implements the SettingsRepository interface
type PostgresSettingsRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewSettingsRepository creates a new PostgresSettingsRepository
func NewSettingsRepository(config *RepositoryConfig) repositories.SettingsRepository {
	return &PostgresSettingsRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Get retrieves settings for a specific user. Inside a transaction the row
// stays locked until commit so a read-modify-write cannot lose updates.
func (r *PostgresSettingsRepository) Get(ctx context.Context, userID string) (*models.UserSettings, error) {
	query := fmt.Sprintf(`
		SELECT user_id, settings, created_at, updated_at
		FROM %s
		WHERE user_id = $1
	`, r.tables.UserSettings)
	if repositories.GetTx(ctx) != nil {
		query += " FOR UPDATE"
	}

	var s models.UserSettings
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, userID).Scan(
		&s.UserID,
		&s.Settings,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if IsPgNoRowsError(err) {
			// never saved
			return nil, nil
		}
		return nil, fmt.Errorf("get user settings: %w", err)
	}

	return &s, nil
}

// Upsert creates or replaces user settings
func (r *PostgresSettingsRepository) Upsert(ctx context.Context, s *models.UserSettings) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, settings, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET
			settings = EXCLUDED.settings,
			updated_at = EXCLUDED.updated_at
		RETURNING user_id, settings, created_at, updated_at
	`, r.tables.UserSettings)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		s.UserID,
		s.Settings,
		s.CreatedAt,
		s.UpdatedAt,
	).Scan(
		&s.UserID,
		&s.Settings,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert user settings: %w", err)
	}

	return nil
}

// Delete removes stored settings
func (r *PostgresSettingsRepository) Delete(ctx context.Context, userID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE user_id = $1`, r.tables.UserSettings)

	executor := GetExecutor(ctx, r.pool)
	if _, err := executor.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("delete user settings: %w", err)
	}
	return nil
}
