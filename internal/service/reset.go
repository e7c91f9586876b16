package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/annashrm/detox-course-bot/internal/infra/postgres/repository"
)

// ResetService wipes all persisted state of a user in one transaction:
// progress, settings and reminder preferences. The next interaction starts
// from the all-empty defaults.
type ResetService struct {
	tr Transactor
}

func NewResetService(tr Transactor) *ResetService {
	return &ResetService{tr: tr}
}

func (s *ResetService) ResetUser(ctx context.Context, userID int64) error {
	return s.tr.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return repository.NewStateRepository(tx).DeleteAll(ctx, userID)
	})
}
