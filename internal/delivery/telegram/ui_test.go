package telegram

import (
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annashrm/detox-course-bot/internal/domain/entities"
)

func keyboardHasCallback(rows [][]tgbotapi.InlineKeyboardButton, data string) bool {
	for _, row := range rows {
		for _, btn := range row {
			if btn.CallbackData != nil && *btn.CallbackData == data {
				return true
			}
		}
	}
	return false
}

func mustParseDate(t *testing.T, date string) time.Time {
	t.Helper()
	parsed, err := time.Parse(entities.DateLayout, date)
	require.NoError(t, err)
	return parsed
}

func testDay() *entities.Day {
	return &entities.Day{
		Number: 3,
		Morning: []entities.DayTask{
			{ID: "morning-3-1", Text: "Контрастный душ", Emoji: "🚿"},
		},
		Exercises: []entities.Exercise{
			{ID: "ex-3-1", Name: "Шаги"},
		},
		Evening: []entities.DayTask{
			{ID: "eve-3-1", Text: "Ванна с солью", Emoji: "🛁"},
			{ID: "eve-3-4", Text: "Мантра перед сном", Emoji: "🎶", Optional: true},
		},
	}
}

func TestDayTasksDone(t *testing.T) {
	day := testDay()
	p := entities.NewCourseProgress()

	assert.False(t, dayTasksDone(day, p))

	p.ToggleTask(3, "morning-3-1")
	p.ToggleTask(3, "ex-3-1")
	assert.False(t, dayTasksDone(day, p))

	// The optional mantra is not required.
	p.ToggleTask(3, "eve-3-1")
	assert.True(t, dayTasksDone(day, p))

	p.ToggleTask(3, "morning-3-1")
	assert.False(t, dayTasksDone(day, p))
}

func TestBuildDayKeyboard_CompleteButton(t *testing.T) {
	day := testDay()
	p := entities.NewCourseProgress()

	kb := buildDayKeyboard(day, p)
	assert.False(t, keyboardHasCallback(kb.InlineKeyboard, buildDayCompleteCallback(3)))

	for _, id := range day.RequiredTaskIDs() {
		p.ToggleTask(3, id)
	}
	kb = buildDayKeyboard(day, p)
	assert.True(t, keyboardHasCallback(kb.InlineKeyboard, buildDayCompleteCallback(3)))

	// Once the day is completed the button disappears again.
	p.CompleteDay(3)
	kb = buildDayKeyboard(day, p)
	assert.False(t, keyboardHasCallback(kb.InlineKeyboard, buildDayCompleteCallback(3)))
}

func TestBuildDaysKeyboard_Labels(t *testing.T) {
	p := entities.NewCourseProgress()
	p.StartCourse(mustParseDate(t, "2026-03-01"))
	p.CompleteDay(1)

	kb := buildDaysKeyboard(p)

	var labels []string
	for _, row := range kb.InlineKeyboard {
		for _, btn := range row {
			labels = append(labels, btn.Text)
		}
	}
	assert.Len(t, labels, entities.CourseLengthDays)
	assert.Contains(t, labels, "✅1")
	assert.Contains(t, labels, "▶️2")
	assert.Contains(t, labels, "3")
}
