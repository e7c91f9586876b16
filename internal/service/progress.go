package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/annashrm/detox-course-bot/internal/domain/entities"
	"github.com/annashrm/detox-course-bot/internal/infra/postgres/repository"
)

// ProgressService is the single writer of the CourseProgress aggregate.
// Every mutation loads the current document, applies a pure in-memory change
// and writes the result back. Persistence is best effort: a failed write is
// logged, the updated aggregate is still returned to the caller and rendered:
// the user never sees a storage error.
type ProgressService struct {
	states StateRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewProgressService(states StateRepository, logger *zap.Logger) *ProgressService {
	return &ProgressService{
		states: states,
		logger: logger,
		now:    time.Now,
	}
}

// Get loads the user's progress. A missing document yields the default
// aggregate; a malformed one is tolerated by merging whatever parses over
// the defaults, field by field.
func (s *ProgressService) Get(ctx context.Context, userID int64) *entities.CourseProgress {
	progress := entities.NewCourseProgress()

	raw, err := s.states.Get(ctx, userID, repository.KeyCourseProgress)
	if err != nil {
		if !errors.Is(err, repository.ErrStateNotFound) {
			s.logger.Warn("failed to load progress, starting from defaults",
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
		}
		return progress
	}

	if err := json.Unmarshal(raw, progress); err != nil {
		s.logger.Warn("malformed stored progress, starting from defaults",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return entities.NewCourseProgress()
	}

	progress.Normalize()
	return progress
}

func (s *ProgressService) persist(ctx context.Context, userID int64, p *entities.CourseProgress) {
	raw, err := json.Marshal(p)
	if err != nil {
		s.logger.Error("failed to marshal progress", zap.Int64("user_id", userID), zap.Error(err))
		return
	}
	if err := s.states.Set(ctx, userID, repository.KeyCourseProgress, raw); err != nil {
		s.logger.Error("failed to persist progress", zap.Int64("user_id", userID), zap.Error(err))
	}
}

func (s *ProgressService) update(ctx context.Context, userID int64, fn func(p *entities.CourseProgress)) *entities.CourseProgress {
	progress := s.Get(ctx, userID)
	fn(progress)
	s.persist(ctx, userID, progress)
	return progress
}

// StartCourse puts the user on day 1 and stamps the start date.
func (s *ProgressService) StartCourse(ctx context.Context, userID int64) *entities.CourseProgress {
	return s.update(ctx, userID, func(p *entities.CourseProgress) {
		p.StartCourse(s.now())
	})
}

// CompleteDay marks the day done and advances the current day.
func (s *ProgressService) CompleteDay(ctx context.Context, userID int64, day int) *entities.CourseProgress {
	return s.update(ctx, userID, func(p *entities.CourseProgress) {
		p.CompleteDay(day)
	})
}

// ToggleTask flips a task's completion inside a day.
func (s *ProgressService) ToggleTask(ctx context.Context, userID int64, day int, taskID string) *entities.CourseProgress {
	return s.update(ctx, userID, func(p *entities.CourseProgress) {
		p.ToggleTask(day, taskID)
	})
}

// IsTaskCompleted reports current completion of a task. Pure lookup.
func (s *ProgressService) IsTaskCompleted(ctx context.Context, userID int64, day int, taskID string) bool {
	return s.Get(ctx, userID).IsTaskCompleted(day, taskID)
}

// UpdateMeasurements merges a partial measurement into the slot.
func (s *ProgressService) UpdateMeasurements(ctx context.Context, userID int64, slot entities.MeasurementSlot, patch entities.MeasurementPatch) *entities.CourseProgress {
	return s.update(ctx, userID, func(p *entities.CourseProgress) {
		p.UpdateMeasurements(slot, patch, s.now())
	})
}

// SetCoefficient overwrites the portion multiplier.
func (s *ProgressService) SetCoefficient(ctx context.Context, userID int64, value float64) *entities.CourseProgress {
	return s.update(ctx, userID, func(p *entities.CourseProgress) {
		p.SetCoefficient(value)
	})
}

// TogglePreparationItem flips a preparation checklist item.
func (s *ProgressService) TogglePreparationItem(ctx context.Context, userID int64, itemID string) *entities.CourseProgress {
	return s.update(ctx, userID, func(p *entities.CourseProgress) {
		p.TogglePreparationItem(itemID)
	})
}

// ToggleShoppingItem flips a shopping checklist item.
func (s *ProgressService) ToggleShoppingItem(ctx context.Context, userID int64, itemID string) *entities.CourseProgress {
	return s.update(ctx, userID, func(p *entities.CourseProgress) {
		p.ToggleShoppingItem(itemID)
	})
}

// LogWater adds milliliters to the date's running total.
func (s *ProgressService) LogWater(ctx context.Context, userID int64, date string, amount int) *entities.CourseProgress {
	return s.update(ctx, userID, func(p *entities.CourseProgress) {
		p.LogWater(date, amount)
	})
}

// LogSteps overwrites the step count for the date.
func (s *ProgressService) LogSteps(ctx context.Context, userID int64, date string, count int) *entities.CourseProgress {
	return s.update(ctx, userID, func(p *entities.CourseProgress) {
		p.LogSteps(date, count)
	})
}

// AddNote replaces the note for the date.
func (s *ProgressService) AddNote(ctx context.Context, userID int64, date string, text string) *entities.CourseProgress {
	return s.update(ctx, userID, func(p *entities.CourseProgress) {
		p.AddNote(date, text)
	})
}

// Today returns the current date in the per-day key format.
func (s *ProgressService) Today() string {
	return s.now().Format(entities.DateLayout)
}
