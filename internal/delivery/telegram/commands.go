package telegram

import (
	"context"
	"strconv"
	"strings"

	"github.com/annashrm/detox-course-bot/internal/domain/entities"
	"github.com/annashrm/detox-course-bot/internal/storage"
)

// handleStart shows the main screen for the user's current course mode.
func (h *Handler) handleStart(userID int64, firstName string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		text, kb := h.renderHome(ctx, userID, firstName)
		msg := newHTMLMessage(chatID, text)
		msg.ReplyMarkup = kb
		return h.send(msg)
	}
}

// handleToday opens the user's current day, falling back to day 1 before the
// course is started.
func (h *Handler) handleToday(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		p := h.progress.Get(ctx, userID)

		day := p.CurrentDay
		if day < 1 {
			day = 1
		}
		if day > entities.CourseLengthDays {
			day = entities.CourseLengthDays
		}

		text, kb, err := h.renderDay(ctx, userID, day)
		if err != nil {
			return err
		}

		msg := newHTMLMessage(chatID, text)
		msg.ReplyMarkup = kb
		return h.send(msg)
	}
}

func (h *Handler) handleDays(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		text, kb := h.renderDaysList(ctx, userID)
		msg := newHTMLMessage(chatID, text)
		msg.ReplyMarkup = kb
		return h.send(msg)
	}
}

func (h *Handler) handleRecipes() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		text, kb := h.renderRecipesMenu()
		msg := newHTMLMessage(chatID, text)
		msg.ReplyMarkup = kb
		return h.send(msg)
	}
}

func (h *Handler) handleWorkouts() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		text, kb := h.renderWorkoutsMenu()
		msg := newHTMLMessage(chatID, text)
		msg.ReplyMarkup = kb
		return h.send(msg)
	}
}

func (h *Handler) handleInfo() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		text, kb := h.renderInfoMenu()
		msg := newHTMLMessage(chatID, text)
		msg.ReplyMarkup = kb
		return h.send(msg)
	}
}

func (h *Handler) handleTrackers(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		text, kb := h.renderTrackers(ctx, userID)
		msg := newHTMLMessage(chatID, text)
		msg.ReplyMarkup = kb
		return h.send(msg)
	}
}

func (h *Handler) handleProfile(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		text, kb := h.renderProfile(ctx, userID)
		msg := newHTMLMessage(chatID, text)
		msg.ReplyMarkup = kb
		return h.send(msg)
	}
}

func (h *Handler) handlePreparation(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		text, kb := h.renderPreparation(ctx, userID)
		msg := newHTMLMessage(chatID, text)
		msg.ReplyMarkup = kb
		return h.send(msg)
	}
}

func (h *Handler) handleShopping(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		text, kb := h.renderShoppingMenu(ctx, userID)
		msg := newHTMLMessage(chatID, text)
		msg.ReplyMarkup = kb
		return h.send(msg)
	}
}

func (h *Handler) handleLeaderboard(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		text, kb := h.renderLeaderboard(ctx, userID)
		msg := newHTMLMessage(chatID, text)
		msg.ReplyMarkup = kb
		return h.send(msg)
	}
}

func (h *Handler) handleSettings(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		text, kb := h.renderSettings(ctx, userID)
		msg := newHTMLMessage(chatID, text)
		msg.ReplyMarkup = kb
		return h.send(msg)
	}
}

func (h *Handler) handleReset() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		msg := newHTMLMessage(chatID, msgResetConfirm)
		msg.ReplyMarkup = buildResetKeyboard()
		return h.send(msg)
	}
}

// handleTextInput interprets a plain message as the value the bot last asked
// for. Without an awaited input a bare day number opens that day.
func (h *Handler) handleTextInput(userID int64, text string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		text = strings.TrimSpace(text)

		pending, ok := h.pending.Get(userID)
		if !ok {
			if day, err := strconv.Atoi(text); err == nil {
				if day < 1 || day > entities.CourseLengthDays {
					return h.send(newHTMLMessage(chatID, msgInvalidDayNumber))
				}
				return h.openDay(ctx, userID, chatID, day)
			}
			return h.send(newHTMLMessage(chatID, msgNoPendingInput))
		}

		switch pending.Kind {
		case storage.InputSteps:
			return h.handleStepsInput(ctx, userID, chatID, text)
		case storage.InputNote:
			return h.handleNoteInput(ctx, userID, chatID, text)
		case storage.InputCoefficient:
			return h.handleCoefficientInput(ctx, userID, chatID, text)
		case storage.InputMeasurement:
			return h.handleMeasurementInput(ctx, userID, chatID, pending, text)
		default:
			h.pending.Delete(userID)
			return h.send(newHTMLMessage(chatID, msgNoPendingInput))
		}
	}
}

func (h *Handler) openDay(ctx context.Context, userID, chatID int64, day int) error {
	text, kb, err := h.renderDay(ctx, userID, day)
	if err != nil {
		return err
	}

	msg := newHTMLMessage(chatID, text)
	msg.ReplyMarkup = kb
	return h.send(msg)
}

func (h *Handler) handleStepsInput(ctx context.Context, userID, chatID int64, text string) error {
	steps, err := strconv.Atoi(text)
	if err != nil || steps < 0 {
		return h.send(newHTMLMessage(chatID, msgInvalidSteps))
	}

	h.pending.Delete(userID)
	h.progress.LogSteps(ctx, userID, h.progress.Today(), steps)

	trackers, kb := h.renderTrackers(ctx, userID)
	msg := newHTMLMessage(chatID, trackers)
	msg.ReplyMarkup = kb
	return h.send(msg)
}

func (h *Handler) handleNoteInput(ctx context.Context, userID, chatID int64, text string) error {
	h.pending.Delete(userID)
	h.progress.AddNote(ctx, userID, h.progress.Today(), text)

	trackers, kb := h.renderTrackers(ctx, userID)
	msg := newHTMLMessage(chatID, trackers)
	msg.ReplyMarkup = kb
	return h.send(msg)
}

func (h *Handler) handleCoefficientInput(ctx context.Context, userID, chatID int64, text string) error {
	value, err := strconv.ParseFloat(strings.ReplaceAll(text, ",", "."), 64)
	if err != nil || value <= 0 {
		return h.send(newHTMLMessage(chatID, msgInvalidNumber))
	}

	h.pending.Delete(userID)
	h.progress.SetCoefficient(ctx, userID, value)
	h.settings.SetCoefficient(ctx, userID, value)

	profile, kb := h.renderProfile(ctx, userID)
	msg := newHTMLMessage(chatID, profile)
	msg.ReplyMarkup = kb
	return h.send(msg)
}

// handleMeasurementInput walks the weight, waist, hips sequence for one slot.
// A "-" answer skips the current field.
func (h *Handler) handleMeasurementInput(ctx context.Context, userID, chatID int64, pending storage.PendingInput, text string) error {
	var value *float64
	if text != "-" {
		parsed, err := strconv.ParseFloat(strings.ReplaceAll(text, ",", "."), 64)
		if err != nil || parsed <= 0 {
			return h.send(newHTMLMessage(chatID, msgInvalidNumber))
		}
		value = &parsed
	}

	slot := entities.MeasurementSlot(pending.Slot)
	var patch entities.MeasurementPatch

	switch pending.Field {
	case "weight":
		patch.Weight = value
	case "waist":
		patch.Waist = value
	case "hips":
		patch.Hips = value
	}

	if value != nil {
		h.progress.UpdateMeasurements(ctx, userID, slot, patch)
	}

	next := map[string]string{"weight": "waist", "waist": "hips"}[pending.Field]
	if next == "" {
		h.pending.Delete(userID)

		profile, kb := h.renderProfile(ctx, userID)
		msg := newHTMLMessage(chatID, profile)
		msg.ReplyMarkup = kb
		return h.send(msg)
	}

	pending.Field = next
	h.pending.Store(userID, pending)

	prompt := msgPromptWaist
	if next == "hips" {
		prompt = msgPromptHips
	}
	return h.send(newHTMLMessage(chatID, prompt))
}
