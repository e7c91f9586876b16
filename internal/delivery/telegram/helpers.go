package telegram

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// newHTMLMessage creates a message with HTML parse mode.
func newHTMLMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	return msg
}

// newHTMLEdit creates an edit with HTML parse mode.
func newHTMLEdit(chatID int64, msgID int, text string) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageText(chatID, msgID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	return edit
}

// buildProgressBar creates an ASCII progress bar.
func buildProgressBar(current, total, length int) string {
	if total == 0 {
		return strings.Repeat("░", length)
	}

	filled := int(float64(current) / float64(total) * float64(length))
	if filled > length {
		filled = length
	}

	empty := length - filled
	bar := strings.Repeat("█", filled) + strings.Repeat("░", empty)
	return fmt.Sprintf("[%s]", bar)
}

// checkbox returns the checklist marker for a done flag.
func checkbox(done bool) string {
	if done {
		return "✅"
	}
	return "⬜️"
}

// truncateLabel shortens button labels so they stay readable on one row.
func truncateLabel(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

// The unit must not be followed by another letter, so "грамм" and similar
// words are left alone.
var gramsRe = regexp.MustCompile(`(\d+)\s*г(\P{L}|$)`)

// scaleIngredient multiplies gram amounts inside an ingredient line by the
// portion coefficient. Lines without a gram amount pass through unchanged.
func scaleIngredient(line string, coefficient float64) string {
	if coefficient == 1 {
		return line
	}

	return gramsRe.ReplaceAllStringFunc(line, func(match string) string {
		parts := gramsRe.FindStringSubmatch(match)
		grams, err := strconv.Atoi(parts[1])
		if err != nil {
			return match
		}

		scaled := int(float64(grams)*coefficient + 0.5)
		return fmt.Sprintf("%dг%s", scaled, parts[2])
	})
}

// formatCoefficient trims trailing zeros: 1.0 renders as "1", 1.25 as "1.25".
func formatCoefficient(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
