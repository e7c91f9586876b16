package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/annashrm/detox-course-bot/internal/infra/postgres"
)

var ErrStateNotFound = errors.New("state not found")

// Keys of the per-user state documents: one document per concern, values
// JSON-serialized.
const (
	KeyCourseProgress = "course_progress"
	KeyTextMode       = "text_mode"
	KeyCoefficient    = "user_coefficient"
	KeyReminders      = "reminders"
)

// StateRepository stores per-user JSON documents keyed by string.
type StateRepository struct {
	db postgres.DBTX
}

// NewStateRepository creates a StateRepository over a pool or a transaction.
func NewStateRepository(db postgres.DBTX) *StateRepository {
	return &StateRepository{db: db}
}

// Get retrieves the raw JSON document stored under the key.
func (r *StateRepository) Get(ctx context.Context, userID int64, key string) (json.RawMessage, error) {
	query := `
		SELECT value
		FROM user_state
		WHERE user_id = $1 AND key = $2
	`

	var value json.RawMessage
	err := r.db.QueryRow(ctx, query, userID, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStateNotFound
		}
		return nil, fmt.Errorf("get state %q: %w", key, err)
	}

	return value, nil
}

// Set creates or overwrites the document stored under the key.
func (r *StateRepository) Set(ctx context.Context, userID int64, key string, value json.RawMessage) error {
	query := `
		INSERT INTO user_state (user_id, key, value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = NOW()
	`

	if _, err := r.db.Exec(ctx, query, userID, key, value); err != nil {
		return fmt.Errorf("set state %q: %w", key, err)
	}

	return nil
}

// Delete removes the document stored under the key, if any.
func (r *StateRepository) Delete(ctx context.Context, userID int64, key string) error {
	query := `DELETE FROM user_state WHERE user_id = $1 AND key = $2`

	if _, err := r.db.Exec(ctx, query, userID, key); err != nil {
		return fmt.Errorf("delete state %q: %w", key, err)
	}

	return nil
}

// DeleteAll removes every state document of the user.
func (r *StateRepository) DeleteAll(ctx context.Context, userID int64) error {
	query := `DELETE FROM user_state WHERE user_id = $1`

	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("delete all state: %w", err)
	}

	return nil
}
