package entities

import "time"

// User represents a bot user. Identity comes straight from the Telegram
// update payload and is trusted as-is.
type User struct {
	ID           int64 // Telegram user ID
	ChatID       int64
	FirstName    string
	LastName     string
	Username     string
	LanguageCode string
	CreatedAt    time.Time
}

func NewUser(id, chatID int64, firstName, lastName, username, languageCode string) *User {
	return &User{
		ID:           id,
		ChatID:       chatID,
		FirstName:    firstName,
		LastName:     lastName,
		Username:     username,
		LanguageCode: languageCode,
	}
}
