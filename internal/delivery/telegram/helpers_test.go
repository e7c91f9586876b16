package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildProgressBar(t *testing.T) {
	assert.Equal(t, "[██████████]", buildProgressBar(10, 10, 10))
	assert.Equal(t, "[█████░░░░░]", buildProgressBar(5, 10, 10))
	assert.Equal(t, "[░░░░░░░░░░]", buildProgressBar(0, 10, 10))
	assert.Equal(t, "░░░░░", buildProgressBar(3, 0, 5))
	// Overshoot is clamped to a full bar.
	assert.Equal(t, "[█████]", buildProgressBar(4500, 3000, 5))
}

func TestScaleIngredient(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		coefficient float64
		want        string
	}{
		{"unit coefficient passthrough", "Куриное филе 200 г", 1, "Куриное филе 200 г"},
		{"scales up", "Куриное филе 200 г", 1.5, "Куриное филе 300г"},
		{"scales down with rounding", "Сыр 125 г", 0.8, "Сыр 100г"},
		{"rounds half up", "Лосось 150 г", 1.1, "Лосось 165г"},
		{"amount at end of line", "Скир 100г", 1.2, "Скир 120г"},
		{"amount before comma", "Шпинат 50 г, свежий", 2, "Шпинат 100г, свежий"},
		{"several amounts", "Фарш 300 г и сыр 50 г", 1.5, "Фарш 450г и сыр 75г"},
		{"no grams untouched", "2 яйца", 1.5, "2 яйца"},
		{"spelled-out unit untouched", "100 граммов не трогаем", 1.5, "100 граммов не трогаем"},
		{"milliliters untouched", "Кефир 500 мл", 1.5, "Кефир 500 мл"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scaleIngredient(tt.line, tt.coefficient))
		})
	}
}

func TestTruncateLabel(t *testing.T) {
	assert.Equal(t, "короткий", truncateLabel("короткий", 10))
	assert.Equal(t, "ровно десять", truncateLabel("ровно десять", 12))
	assert.Equal(t, "длинная с…", truncateLabel("длинная строка кнопки", 10))
}

func TestFormatCoefficient(t *testing.T) {
	assert.Equal(t, "1", formatCoefficient(1))
	assert.Equal(t, "0.8", formatCoefficient(0.8))
	assert.Equal(t, "1.25", formatCoefficient(1.25))
}

func TestCheckbox(t *testing.T) {
	assert.Equal(t, "✅", checkbox(true))
	assert.Equal(t, "⬜️", checkbox(false))
}
