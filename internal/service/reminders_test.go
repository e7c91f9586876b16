package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/annashrm/detox-course-bot/internal/domain/entities"
)

type fakeUserRepository struct {
	chats map[int64]int64
}

func (f *fakeUserRepository) Upsert(_ context.Context, _ *entities.User) error {
	return nil
}

func (f *fakeUserRepository) ListChats(_ context.Context) (map[int64]int64, error) {
	return f.chats, nil
}

type fakeNotifier struct {
	sent map[int64][]string
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{sent: map[int64][]string{}}
}

func (f *fakeNotifier) SendReminder(chatID int64, text string) error {
	f.sent[chatID] = append(f.sent[chatID], text)
	return nil
}

func newRemindersService(states StateRepository, users UserRepository, notifier ReminderNotifier) *RemindersService {
	progress := newProgressService(states)
	return NewRemindersService(states, users, progress, notifier, zap.NewNop())
}

func TestReminders_Defaults(t *testing.T) {
	s := newRemindersService(newFakeStateRepository(), &fakeUserRepository{}, newFakeNotifier())

	rem := s.Get(context.Background(), 42)

	assert.False(t, rem.Enabled)
	assert.Equal(t, 9, rem.Hour)
	assert.Empty(t, rem.LastSentDate)
}

func TestReminders_ToggleAndSetHour(t *testing.T) {
	s := newRemindersService(newFakeStateRepository(), &fakeUserRepository{}, newFakeNotifier())
	ctx := context.Background()

	rem := s.Toggle(ctx, 42)
	assert.True(t, rem.Enabled)

	rem = s.SetHour(ctx, 42, 20)
	assert.Equal(t, 20, rem.Hour)
	assert.True(t, rem.Enabled)

	rem = s.Toggle(ctx, 42)
	assert.False(t, rem.Enabled)
	assert.Equal(t, 20, rem.Hour)
}

func TestReminders_ShouldSend(t *testing.T) {
	rem := &entities.UserReminders{Enabled: true, Hour: 9}

	assert.True(t, rem.ShouldSend(9, "2026-03-10"))
	assert.False(t, rem.ShouldSend(10, "2026-03-10"))

	rem.LastSentDate = "2026-03-10"
	assert.False(t, rem.ShouldSend(9, "2026-03-10"))
	assert.True(t, rem.ShouldSend(9, "2026-03-11"))

	rem.Enabled = false
	assert.False(t, rem.ShouldSend(9, "2026-03-11"))
}

func TestReminders_Dispatch(t *testing.T) {
	states := newFakeStateRepository()
	users := &fakeUserRepository{chats: map[int64]int64{1: 100, 2: 200}}
	notifier := newFakeNotifier()
	s := newRemindersService(states, users, notifier)
	ctx := context.Background()

	// User 1 opted in and is on the course; user 2 opted in but never started.
	s.progress.StartCourse(ctx, 1)
	s.Toggle(ctx, 1)
	s.Toggle(ctx, 2)

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	s.dispatch(ctx, now)

	require.Len(t, notifier.sent[100], 1)
	assert.Contains(t, notifier.sent[100][0], "день 1 из 20")
	assert.Empty(t, notifier.sent[200])

	// Same hour, same date: the nudge is not repeated.
	s.dispatch(ctx, now)
	assert.Len(t, notifier.sent[100], 1)

	// Next day it fires again.
	s.dispatch(ctx, now.Add(24*time.Hour))
	assert.Len(t, notifier.sent[100], 2)
}

func TestReminders_DispatchSkipsOtherHours(t *testing.T) {
	states := newFakeStateRepository()
	users := &fakeUserRepository{chats: map[int64]int64{1: 100}}
	notifier := newFakeNotifier()
	s := newRemindersService(states, users, notifier)
	ctx := context.Background()

	s.progress.StartCourse(ctx, 1)
	s.Toggle(ctx, 1)
	s.SetHour(ctx, 1, 20)

	s.dispatch(ctx, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	assert.Empty(t, notifier.sent)

	s.dispatch(ctx, time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC))
	assert.Len(t, notifier.sent[100], 1)
}
