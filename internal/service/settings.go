package service

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/annashrm/detox-course-bot/internal/domain/entities"
	"github.com/annashrm/detox-course-bot/internal/infra/postgres/repository"
)

// SettingsService manages the small per-user preference set. Text mode and
// the legacy coefficient live under their own state keys, separate from the
// course progress document.
type SettingsService struct {
	states StateRepository
	logger *zap.Logger
}

func NewSettingsService(states StateRepository, logger *zap.Logger) *SettingsService {
	return &SettingsService{states: states, logger: logger}
}

// Get loads the settings, falling back to defaults for missing or
// unreadable values.
func (s *SettingsService) Get(ctx context.Context, userID int64) *entities.UserSettings {
	settings := entities.NewUserSettings(userID)

	if raw, err := s.states.Get(ctx, userID, repository.KeyTextMode); err == nil {
		var v bool
		if err := json.Unmarshal(raw, &v); err == nil {
			settings.TextMode = v
		}
	} else if !errors.Is(err, repository.ErrStateNotFound) {
		s.logger.Warn("failed to load text mode", zap.Int64("user_id", userID), zap.Error(err))
	}

	if raw, err := s.states.Get(ctx, userID, repository.KeyCoefficient); err == nil {
		var v float64
		if err := json.Unmarshal(raw, &v); err == nil && v != 0 {
			settings.Coefficient = v
		}
	} else if !errors.Is(err, repository.ErrStateNotFound) {
		s.logger.Warn("failed to load coefficient", zap.Int64("user_id", userID), zap.Error(err))
	}

	return settings
}

// SetTextMode directly sets the transcript preference.
func (s *SettingsService) SetTextMode(ctx context.Context, userID int64, value bool) {
	s.set(ctx, userID, repository.KeyTextMode, value)
}

// ToggleTextMode flips the transcript preference and returns the new value.
func (s *SettingsService) ToggleTextMode(ctx context.Context, userID int64) bool {
	value := !s.Get(ctx, userID).TextMode
	s.set(ctx, userID, repository.KeyTextMode, value)
	return value
}

// SetCoefficient writes the legacy settings-level coefficient.
func (s *SettingsService) SetCoefficient(ctx context.Context, userID int64, value float64) {
	s.set(ctx, userID, repository.KeyCoefficient, value)
}

func (s *SettingsService) set(ctx context.Context, userID int64, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.Error("failed to marshal setting", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.states.Set(ctx, userID, key, raw); err != nil {
		s.logger.Error("failed to persist setting",
			zap.Int64("user_id", userID),
			zap.String("key", key),
			zap.Error(err),
		)
	}
}
