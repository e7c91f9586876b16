package service

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"

	"github.com/annashrm/detox-course-bot/internal/domain/entities"
)

// StateRepository stores per-user JSON documents keyed by string.
type StateRepository interface {
	Get(ctx context.Context, userID int64, key string) (json.RawMessage, error)
	Set(ctx context.Context, userID int64, key string, value json.RawMessage) error
	Delete(ctx context.Context, userID int64, key string) error
}

// UserRepository manages user records.
type UserRepository interface {
	Upsert(ctx context.Context, user *entities.User) error
	ListChats(ctx context.Context) (map[int64]int64, error)
}

// Transactor runs a function within a database transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error
}

// ReminderNotifier sends reminder messages to users.
type ReminderNotifier interface {
	SendReminder(chatID int64, text string) error
}
