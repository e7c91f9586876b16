package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/annashrm/detox-course-bot/internal/domain/entities"
	"github.com/annashrm/detox-course-bot/internal/infra/postgres/repository"
)

// RemindersService sends a once-a-day nudge with the user's current day and
// today's water total. An hourly cron tick checks every opted-in user whose
// preferred hour has arrived.
type RemindersService struct {
	states   StateRepository
	users    UserRepository
	progress *ProgressService
	notifier ReminderNotifier
	logger   *zap.Logger
	cron     *cron.Cron
}

func NewRemindersService(
	states StateRepository,
	users UserRepository,
	progress *ProgressService,
	notifier ReminderNotifier,
	logger *zap.Logger,
) *RemindersService {
	return &RemindersService{
		states:   states,
		users:    users,
		progress: progress,
		notifier: notifier,
		logger:   logger,
	}
}

// Start schedules the hourly dispatch. Stop cancels it.
func (s *RemindersService) Start(ctx context.Context) error {
	c := cron.New()

	_, err := c.AddFunc("0 * * * *", func() {
		s.dispatch(ctx, time.Now())
	})
	if err != nil {
		return fmt.Errorf("add cron job: %w", err)
	}

	c.Start()
	s.cron = c
	s.logger.Info("reminder scheduler started")
	return nil
}

func (s *RemindersService) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
		s.logger.Info("reminder scheduler stopped")
	}
}

// Get loads the user's reminder preferences, defaulting to disabled.
func (s *RemindersService) Get(ctx context.Context, userID int64) *entities.UserReminders {
	rem := entities.NewUserReminders()

	raw, err := s.states.Get(ctx, userID, repository.KeyReminders)
	if err != nil {
		if !errors.Is(err, repository.ErrStateNotFound) {
			s.logger.Warn("failed to load reminders", zap.Int64("user_id", userID), zap.Error(err))
		}
		return rem
	}

	if err := json.Unmarshal(raw, rem); err != nil {
		return entities.NewUserReminders()
	}
	return rem
}

// Toggle flips the enabled flag and returns the new preferences.
func (s *RemindersService) Toggle(ctx context.Context, userID int64) *entities.UserReminders {
	rem := s.Get(ctx, userID)
	rem.Enabled = !rem.Enabled
	s.save(ctx, userID, rem)
	return rem
}

// SetHour updates the preferred nudge hour.
func (s *RemindersService) SetHour(ctx context.Context, userID int64, hour int) *entities.UserReminders {
	rem := s.Get(ctx, userID)
	rem.Hour = hour
	s.save(ctx, userID, rem)
	return rem
}

func (s *RemindersService) save(ctx context.Context, userID int64, rem *entities.UserReminders) {
	raw, err := json.Marshal(rem)
	if err != nil {
		s.logger.Error("failed to marshal reminders", zap.Error(err))
		return
	}
	if err := s.states.Set(ctx, userID, repository.KeyReminders, raw); err != nil {
		s.logger.Error("failed to persist reminders", zap.Int64("user_id", userID), zap.Error(err))
	}
}

func (s *RemindersService) dispatch(ctx context.Context, now time.Time) {
	chats, err := s.users.ListChats(ctx)
	if err != nil {
		s.logger.Error("failed to list users for reminders", zap.Error(err))
		return
	}

	date := now.Format(entities.DateLayout)
	hour := now.Hour()

	for userID, chatID := range chats {
		rem := s.Get(ctx, userID)
		if !rem.ShouldSend(hour, date) {
			continue
		}

		progress := s.progress.Get(ctx, userID)
		if progress.Mode() != entities.ModeActive {
			continue
		}

		text := buildReminderText(progress, date)
		if err := s.notifier.SendReminder(chatID, text); err != nil {
			s.logger.Error("failed to send reminder",
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
			continue
		}

		rem.LastSentDate = date
		s.save(ctx, userID, rem)
	}
}

func buildReminderText(p *entities.CourseProgress, date string) string {
	return fmt.Sprintf(
		"⏰ Напоминание о курсе\n\n"+
			"📅 Сегодня день %d из %d\n"+
			"✅ Задач выполнено: %d\n"+
			"💧 Воды выпито: %d мл\n\n"+
			"Откройте /day и продолжайте!",
		p.CurrentDay,
		entities.CourseLengthDays,
		p.CompletedTaskCount(p.CurrentDay),
		p.WaterFor(date),
	)
}
