package repository

import (
	"context"
	"fmt"

	"github.com/annashrm/detox-course-bot/internal/domain/entities"
	"github.com/annashrm/detox-course-bot/internal/infra/postgres"
)

// UserRepository provides access to user records in the database.
type UserRepository struct {
	db postgres.DBTX
}

func NewUserRepository(db postgres.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// Upsert inserts the user or refreshes the identity fields Telegram sent.
func (r *UserRepository) Upsert(ctx context.Context, user *entities.User) error {
	query := `
		INSERT INTO users (id, chat_id, first_name, last_name, username, language_code)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			chat_id = EXCLUDED.chat_id,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			username = EXCLUDED.username,
			language_code = EXCLUDED.language_code
	`

	_, err := r.db.Exec(ctx, query,
		user.ID,
		user.ChatID,
		user.FirstName,
		user.LastName,
		user.Username,
		user.LanguageCode,
	)
	if err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}

	return nil
}

// ListChats returns the chat IDs of all known users, for reminder dispatch.
func (r *UserRepository) ListChats(ctx context.Context) (map[int64]int64, error) {
	query := `SELECT id, chat_id FROM users`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list chats: %w", err)
	}
	defer rows.Close()

	chats := make(map[int64]int64)
	for rows.Next() {
		var userID, chatID int64
		if err := rows.Scan(&userID, &chatID); err != nil {
			return nil, fmt.Errorf("scan chat row: %w", err)
		}
		chats[userID] = chatID
	}

	return chats, rows.Err()
}
