package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/annashrm/detox-course-bot/internal/domain/entities"
	"github.com/annashrm/detox-course-bot/internal/infra/postgres/repository"
)

// fakeStateRepository keeps documents in memory. Setting failSet makes every
// write fail, for exercising the best-effort persistence policy.
type fakeStateRepository struct {
	docs    map[string]json.RawMessage
	failSet bool
}

func newFakeStateRepository() *fakeStateRepository {
	return &fakeStateRepository{docs: map[string]json.RawMessage{}}
}

func (f *fakeStateRepository) key(userID int64, key string) string {
	return fmt.Sprintf("%d/%s", userID, key)
}

func (f *fakeStateRepository) Get(_ context.Context, userID int64, key string) (json.RawMessage, error) {
	raw, ok := f.docs[f.key(userID, key)]
	if !ok {
		return nil, repository.ErrStateNotFound
	}
	return raw, nil
}

func (f *fakeStateRepository) Set(_ context.Context, userID int64, key string, value json.RawMessage) error {
	if f.failSet {
		return errors.New("write refused")
	}
	f.docs[f.key(userID, key)] = value
	return nil
}

func (f *fakeStateRepository) Delete(_ context.Context, userID int64, key string) error {
	delete(f.docs, f.key(userID, key))
	return nil
}

func newProgressService(states StateRepository) *ProgressService {
	s := NewProgressService(states, zap.NewNop())
	s.now = func() time.Time {
		return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	}
	return s
}

func TestProgressService_Get_MissingDocument(t *testing.T) {
	s := newProgressService(newFakeStateRepository())

	p := s.Get(context.Background(), 42)

	assert.Equal(t, entities.NewCourseProgress(), p)
}

func TestProgressService_Get_MalformedDocument(t *testing.T) {
	states := newFakeStateRepository()
	states.docs[states.key(42, repository.KeyCourseProgress)] = json.RawMessage(`{broken`)
	s := newProgressService(states)

	p := s.Get(context.Background(), 42)

	assert.Equal(t, entities.NewCourseProgress(), p)
}

func TestProgressService_Get_PartialDocumentNormalized(t *testing.T) {
	states := newFakeStateRepository()
	states.docs[states.key(42, repository.KeyCourseProgress)] = json.RawMessage(
		`{"currentDay":4,"startDate":"2026-03-01","completedDays":[1,2,3]}`,
	)
	s := newProgressService(states)

	p := s.Get(context.Background(), 42)

	assert.Equal(t, 4, p.CurrentDay)
	assert.Equal(t, entities.ModeActive, p.Mode())
	assert.NotNil(t, p.CompletedTasks)
	assert.Equal(t, entities.DefaultCoefficient, p.Coefficient)
}

func TestProgressService_StartCourse_Persists(t *testing.T) {
	states := newFakeStateRepository()
	s := newProgressService(states)

	p := s.StartCourse(context.Background(), 42)
	assert.Equal(t, "2026-03-10", p.StartDate)
	assert.Equal(t, 1, p.CurrentDay)

	reloaded := s.Get(context.Background(), 42)
	assert.Equal(t, p, reloaded)
}

func TestProgressService_MutationsSurviveReload(t *testing.T) {
	states := newFakeStateRepository()
	s := newProgressService(states)
	ctx := context.Background()

	s.StartCourse(ctx, 42)
	s.CompleteDay(ctx, 42, 1)
	s.ToggleTask(ctx, 42, 2, "morning-2-1")
	s.LogWater(ctx, 42, "2026-03-10", 500)
	s.LogSteps(ctx, 42, "2026-03-10", 9000)
	s.AddNote(ctx, 42, "2026-03-10", "заметка")
	s.SetCoefficient(ctx, 42, 1.2)
	s.TogglePreparationItem(ctx, 42, "prep-1")
	s.ToggleShoppingItem(ctx, 42, "veg-1")
	weight := 65.0
	s.UpdateMeasurements(ctx, 42, entities.SlotWeek1, entities.MeasurementPatch{Weight: &weight})

	p := s.Get(ctx, 42)
	assert.Equal(t, 2, p.CurrentDay)
	assert.Equal(t, []int{1}, p.CompletedDays)
	assert.True(t, p.IsTaskCompleted(2, "morning-2-1"))
	assert.Equal(t, 500, p.WaterFor("2026-03-10"))
	assert.Equal(t, 9000, p.StepsFor("2026-03-10"))
	assert.Equal(t, "заметка", p.NoteFor("2026-03-10"))
	assert.Equal(t, 1.2, p.Coefficient)
	assert.True(t, p.IsPreparationItemDone("prep-1"))
	assert.True(t, p.IsShoppingItemDone("veg-1"))
	require.NotNil(t, p.Measurements.Week1.Weight)
	assert.Equal(t, 65.0, *p.Measurements.Week1.Weight)
	assert.Equal(t, "2026-03-10", p.Measurements.Week1.Date)
}

func TestProgressService_FailedWriteStillReturnsResult(t *testing.T) {
	states := newFakeStateRepository()
	states.failSet = true
	s := newProgressService(states)
	ctx := context.Background()

	p := s.CompleteDay(ctx, 42, 1)

	// The caller sees the applied change even though nothing was stored.
	assert.Equal(t, []int{1}, p.CompletedDays)
	assert.Equal(t, 2, p.CurrentDay)
	assert.Empty(t, states.docs)
	assert.Equal(t, entities.NewCourseProgress(), s.Get(ctx, 42))
}

func TestProgressService_Today(t *testing.T) {
	s := newProgressService(newFakeStateRepository())
	assert.Equal(t, "2026-03-10", s.Today())
}

func TestProgressService_UsersAreIsolated(t *testing.T) {
	s := newProgressService(newFakeStateRepository())
	ctx := context.Background()

	s.StartCourse(ctx, 1)
	s.CompleteDay(ctx, 1, 1)

	assert.Equal(t, entities.ModeActive, s.Get(ctx, 1).Mode())
	assert.Equal(t, entities.ModeNotStarted, s.Get(ctx, 2).Mode())
}
