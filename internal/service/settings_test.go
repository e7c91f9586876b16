package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/annashrm/detox-course-bot/internal/infra/postgres/repository"
)

func TestSettingsService_Get_Defaults(t *testing.T) {
	s := NewSettingsService(newFakeStateRepository(), zap.NewNop())

	settings := s.Get(context.Background(), 42)

	assert.False(t, settings.TextMode)
	assert.Equal(t, 1.0, settings.Coefficient)
}

func TestSettingsService_ToggleTextMode(t *testing.T) {
	s := NewSettingsService(newFakeStateRepository(), zap.NewNop())
	ctx := context.Background()

	assert.True(t, s.ToggleTextMode(ctx, 42))
	assert.True(t, s.Get(ctx, 42).TextMode)

	assert.False(t, s.ToggleTextMode(ctx, 42))
	assert.False(t, s.Get(ctx, 42).TextMode)
}

func TestSettingsService_SetCoefficient(t *testing.T) {
	s := NewSettingsService(newFakeStateRepository(), zap.NewNop())
	ctx := context.Background()

	s.SetCoefficient(ctx, 42, 1.5)

	assert.Equal(t, 1.5, s.Get(ctx, 42).Coefficient)
}

func TestSettingsService_CorruptValueFallsBack(t *testing.T) {
	states := newFakeStateRepository()
	states.docs[states.key(42, repository.KeyTextMode)] = json.RawMessage(`"yes"`)
	states.docs[states.key(42, repository.KeyCoefficient)] = json.RawMessage(`1.2`)
	s := NewSettingsService(states, zap.NewNop())

	settings := s.Get(context.Background(), 42)

	// One unreadable key does not poison the other.
	assert.False(t, settings.TextMode)
	assert.Equal(t, 1.2, settings.Coefficient)
}
