package service

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/annashrm/detox-course-bot/internal/domain/entities"
)

func TestLeaderboard_Generate(t *testing.T) {
	s := NewLeaderboardService(rand.NewSource(1))

	entries := s.Generate(10)

	assert.Len(t, entries, len(mockParticipants))
	for _, e := range entries {
		assert.GreaterOrEqual(t, e.Day, 8)
		assert.LessOrEqual(t, e.Day, 12)
		assert.GreaterOrEqual(t, e.TasksCompleted, 5)
		assert.LessOrEqual(t, e.TasksCompleted, 14)
		assert.GreaterOrEqual(t, e.Streak, 1)
		assert.LessOrEqual(t, e.Streak, e.Day)
		assert.NotEmpty(t, e.Name)
	}
	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i-1].TasksCompleted, entries[i].TasksCompleted)
	}
}

func TestLeaderboard_Generate_ClampsDayRange(t *testing.T) {
	s := NewLeaderboardService(rand.NewSource(1))

	for _, e := range s.Generate(0) {
		assert.GreaterOrEqual(t, e.Day, 1)
	}
	for _, e := range s.Generate(entities.CourseLengthDays) {
		assert.LessOrEqual(t, e.Day, entities.CourseLengthDays)
	}
}

func TestLeaderboard_SameDay(t *testing.T) {
	s := NewLeaderboardService(rand.NewSource(1))
	entries := []LeaderboardEntry{
		{Name: "a", Day: 3},
		{Name: "b", Day: 4},
		{Name: "c", Day: 3},
	}

	same := s.SameDay(entries, 3)

	assert.Len(t, same, 2)
	for _, e := range same {
		assert.Equal(t, 3, e.Day)
	}
	assert.Empty(t, s.SameDay(entries, 7))
}
