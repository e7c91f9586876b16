package service

import (
	"context"

	"github.com/annashrm/detox-course-bot/internal/domain/entities"
)

type UserService struct {
	repository UserRepository
}

func NewUserService(repository UserRepository) *UserService {
	return &UserService{repository: repository}
}

// EnsureUser records or refreshes the user from the update's identity
// payload. The payload is trusted as-is; there is nothing to verify.
func (s *UserService) EnsureUser(ctx context.Context, userID, chatID int64, firstName, lastName, username, languageCode string) error {
	user := entities.NewUser(userID, chatID, firstName, lastName, username, languageCode)
	return s.repository.Upsert(ctx, user)
}
