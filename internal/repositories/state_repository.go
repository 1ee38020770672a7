package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
)

// stateRepository implements string-keyed JSON state access over SQL
type stateRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewStateRepository creates a new state repository
func NewStateRepository(db *sql.DB, logger *zap.Logger) *stateRepository {
	return &stateRepository{
		db:     db,
		logger: logger,
	}
}

// Get retrieves the raw value stored under key.
// The second return value is false when the key is absent.
func (r *stateRepository) Get(ctx context.Context, key string) (string, bool, error) {
	query := `SELECT state_value FROM storefront_state WHERE state_key = ?`

	var value string
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		r.logger.Error("failed to get state", zap.String("key", key), zap.Error(err))
		return "", false, fmt.Errorf("failed to get state: %w", err)
	}

	return value, true, nil
}

// Set stores value under key, replacing any previous value.
// REPLACE INTO is understood by both MySQL and SQLite.
func (r *stateRepository) Set(ctx context.Context, key, value string) error {
	query := `REPLACE INTO storefront_state (state_key, state_value) VALUES (?, ?)`

	_, err := r.db.ExecContext(ctx, query, key, value)
	if err != nil {
		r.logger.Error("failed to set state", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("failed to set state: %w", err)
	}

	return nil
}

// Delete removes the value stored under key. Deleting an absent key is not an error.
func (r *stateRepository) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM storefront_state WHERE state_key = ?`

	_, err := r.db.ExecContext(ctx, query, key)
	if err != nil {
		r.logger.Error("failed to delete state", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("failed to delete state: %w", err)
	}

	return nil
}
