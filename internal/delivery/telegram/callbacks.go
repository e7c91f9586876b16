package telegram

import (
	"context"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/annashrm/detox-course-bot/internal/domain/entities"
	"github.com/annashrm/detox-course-bot/internal/storage"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	userID := cb.From.ID
	chatID := cb.Message.Chat.ID
	data := decodeCallback(cb.Data)

	var (
		text string
		kb   tgbotapi.InlineKeyboardMarkup
		ok   bool
	)

	switch data.Action {
	case actionCourse:
		text, kb, ok = h.handleCourseCallback(ctx, userID, data)
	case actionDay:
		text, kb, ok = h.handleDayCallback(ctx, userID, data)
	case actionDays:
		text, kb = h.renderDaysList(ctx, userID)
		ok = true
	case actionTask:
		text, kb, ok = h.handleTaskCallback(ctx, userID, data)
	case actionTrackers:
		text, kb, ok = h.handleTrackersCallback(ctx, userID, chatID, data)
	case actionRecipes:
		if len(data.Params) == 0 {
			text, kb = h.renderRecipesMenu()
		} else {
			text, kb = h.renderRecipeList(data.Params[0])
		}
		ok = true
	case actionRecipe:
		text, kb, ok = h.handleRecipeCallback(ctx, userID, data)
	case actionWorkouts:
		if len(data.Params) == 0 {
			text, kb = h.renderWorkoutsMenu()
		} else {
			text, kb = h.renderWorkoutList(ctx, userID, data.Params[0])
		}
		ok = true
	case actionInfo:
		if len(data.Params) == 0 {
			text, kb = h.renderInfoMenu()
		} else {
			text, kb = h.renderInfoList(ctx, userID, data.Params[0])
		}
		ok = true
	case actionPrep:
		if len(data.Params) > 0 {
			h.progress.TogglePreparationItem(ctx, userID, data.Params[0])
		}
		text, kb = h.renderPreparation(ctx, userID)
		ok = true
	case actionShop:
		text, kb, ok = h.handleShopCallback(ctx, userID, data)
	case actionProfile:
		text, kb = h.renderProfile(ctx, userID)
		ok = true
	case actionMeasure:
		h.handleMeasureCallback(userID, chatID, data)
	case actionCoef:
		text, kb, ok = h.handleCoefCallback(ctx, userID, chatID, data)
	case actionSettings:
		text, kb, ok = h.handleSettingsCallback(ctx, userID, chatID, data)
	case actionReset:
		text, ok = h.handleResetCallback(ctx, userID, data)
		kb = tgbotapi.InlineKeyboardMarkup{}
	case actionLeaderboard:
		text, kb = h.renderLeaderboard(ctx, userID)
		ok = true
	default:
		h.logger.Warn("unknown callback action", zap.String("data", cb.Data))
	}

	if ok {
		edit := newHTMLEdit(chatID, cb.Message.MessageID, text)
		if len(kb.InlineKeyboard) > 0 {
			edit.ReplyMarkup = &kb
		}
		_ = h.send(edit)
	}

	// Remove the user's "clock".
	answer := tgbotapi.NewCallback(cb.ID, "")
	if _, err := h.bot.Request(answer); err != nil {
		h.logger.Warn("callback answer error", zap.Error(err))
	}
}

func (h *Handler) handleCourseCallback(ctx context.Context, userID int64, data callbackData) (string, tgbotapi.InlineKeyboardMarkup, bool) {
	if len(data.Params) == 0 || data.Params[0] != courseStart {
		return "", tgbotapi.InlineKeyboardMarkup{}, false
	}

	h.progress.StartCourse(ctx, userID)

	text, kb, err := h.renderDay(ctx, userID, 1)
	if err != nil {
		h.logger.Error("render day after course start", zap.Int64("user_id", userID), zap.Error(err))
		return msgDayUnavailable, tgbotapi.InlineKeyboardMarkup{}, true
	}
	return text, kb, true
}

func (h *Handler) handleDayCallback(ctx context.Context, userID int64, data callbackData) (string, tgbotapi.InlineKeyboardMarkup, bool) {
	if len(data.Params) == 0 {
		return "", tgbotapi.InlineKeyboardMarkup{}, false
	}

	day, err := strconv.Atoi(data.Params[0])
	if err != nil || day < 1 || day > entities.CourseLengthDays {
		h.logger.Warn("invalid day in callback", zap.String("data", data.Raw))
		return "", tgbotapi.InlineKeyboardMarkup{}, false
	}

	if len(data.Params) > 1 {
		switch data.Params[1] {
		case dayComplete:
			h.progress.CompleteDay(ctx, userID, day)
		case dayWater:
			if len(data.Params) > 2 {
				if amount, err := strconv.Atoi(data.Params[2]); err == nil && amount > 0 {
					h.progress.LogWater(ctx, userID, h.progress.Today(), amount)
				}
			}
		}
	}

	text, kb, err := h.renderDay(ctx, userID, day)
	if err != nil {
		h.logger.Error("render day", zap.Int("day", day), zap.Error(err))
		return msgDayUnavailable, tgbotapi.InlineKeyboardMarkup{}, true
	}
	return text, kb, true
}

func (h *Handler) handleTaskCallback(ctx context.Context, userID int64, data callbackData) (string, tgbotapi.InlineKeyboardMarkup, bool) {
	if len(data.Params) < 2 {
		return "", tgbotapi.InlineKeyboardMarkup{}, false
	}

	day, err := strconv.Atoi(data.Params[0])
	if err != nil || day < 1 || day > entities.CourseLengthDays {
		h.logger.Warn("invalid day in task callback", zap.String("data", data.Raw))
		return "", tgbotapi.InlineKeyboardMarkup{}, false
	}

	h.progress.ToggleTask(ctx, userID, day, data.Params[1])

	text, kb, err := h.renderDay(ctx, userID, day)
	if err != nil {
		h.logger.Error("render day after task toggle", zap.Int("day", day), zap.Error(err))
		return msgDayUnavailable, tgbotapi.InlineKeyboardMarkup{}, true
	}
	return text, kb, true
}

func (h *Handler) handleTrackersCallback(ctx context.Context, userID, chatID int64, data callbackData) (string, tgbotapi.InlineKeyboardMarkup, bool) {
	if len(data.Params) == 0 {
		text, kb := h.renderTrackers(ctx, userID)
		return text, kb, true
	}

	switch data.Params[0] {
	case trackersWater:
		if len(data.Params) > 1 {
			if amount, err := strconv.Atoi(data.Params[1]); err == nil && amount > 0 {
				h.progress.LogWater(ctx, userID, h.progress.Today(), amount)
			}
		}
		text, kb := h.renderTrackers(ctx, userID)
		return text, kb, true
	case trackersSteps:
		h.pending.Store(userID, storage.PendingInput{Kind: storage.InputSteps})
		_ = h.send(newHTMLMessage(chatID, msgPromptSteps))
		return "", tgbotapi.InlineKeyboardMarkup{}, false
	case trackersNote:
		h.pending.Store(userID, storage.PendingInput{Kind: storage.InputNote})
		_ = h.send(newHTMLMessage(chatID, msgPromptNote))
		return "", tgbotapi.InlineKeyboardMarkup{}, false
	}

	return "", tgbotapi.InlineKeyboardMarkup{}, false
}

func (h *Handler) handleRecipeCallback(ctx context.Context, userID int64, data callbackData) (string, tgbotapi.InlineKeyboardMarkup, bool) {
	if len(data.Params) == 0 {
		return "", tgbotapi.InlineKeyboardMarkup{}, false
	}

	text, kb, err := h.renderRecipe(ctx, userID, data.Params[0])
	if err != nil {
		h.logger.Error("render recipe", zap.String("id", data.Params[0]), zap.Error(err))
		return msgRecipeUnavailable, tgbotapi.InlineKeyboardMarkup{}, true
	}
	return text, kb, true
}

func (h *Handler) handleShopCallback(ctx context.Context, userID int64, data callbackData) (string, tgbotapi.InlineKeyboardMarkup, bool) {
	if len(data.Params) == 0 {
		text, kb := h.renderShoppingMenu(ctx, userID)
		return text, kb, true
	}

	if len(data.Params) > 1 {
		h.progress.ToggleShoppingItem(ctx, userID, data.Params[1])
	}

	text, kb, err := h.renderShoppingCategory(ctx, userID, data.Params[0])
	if err != nil {
		h.logger.Error("render shopping category", zap.String("category", data.Params[0]), zap.Error(err))
		text, kb := h.renderShoppingMenu(ctx, userID)
		return text, kb, true
	}
	return text, kb, true
}

// handleMeasureCallback starts the measurement input sequence for a slot.
func (h *Handler) handleMeasureCallback(userID, chatID int64, data callbackData) {
	if len(data.Params) == 0 {
		return
	}

	slot := data.Params[0]
	switch entities.MeasurementSlot(slot) {
	case entities.SlotInitial, entities.SlotWeek1, entities.SlotWeek2, entities.SlotFinal:
	default:
		h.logger.Warn("invalid measurement slot", zap.String("data", data.Raw))
		return
	}

	h.pending.Store(userID, storage.PendingInput{
		Kind:  storage.InputMeasurement,
		Slot:  slot,
		Field: "weight",
	})
	_ = h.send(newHTMLMessage(chatID, msgPromptWeight))
}

func (h *Handler) handleCoefCallback(ctx context.Context, userID, chatID int64, data callbackData) (string, tgbotapi.InlineKeyboardMarkup, bool) {
	if len(data.Params) == 0 {
		return "", tgbotapi.InlineKeyboardMarkup{}, false
	}

	if data.Params[0] == "custom" {
		h.pending.Store(userID, storage.PendingInput{Kind: storage.InputCoefficient})
		_ = h.send(newHTMLMessage(chatID, msgPromptCoefficient))
		return "", tgbotapi.InlineKeyboardMarkup{}, false
	}

	value, err := strconv.ParseFloat(data.Params[0], 64)
	if err != nil || value <= 0 {
		h.logger.Warn("invalid coefficient in callback", zap.String("data", data.Raw))
		return "", tgbotapi.InlineKeyboardMarkup{}, false
	}

	h.progress.SetCoefficient(ctx, userID, value)
	h.settings.SetCoefficient(ctx, userID, value)

	text, kb := h.renderProfile(ctx, userID)
	return text, kb, true
}

func (h *Handler) handleSettingsCallback(ctx context.Context, userID, chatID int64, data callbackData) (string, tgbotapi.InlineKeyboardMarkup, bool) {
	if len(data.Params) == 0 {
		text, kb := h.renderSettings(ctx, userID)
		return text, kb, true
	}

	switch data.Params[0] {
	case settingsTextMode:
		h.settings.ToggleTextMode(ctx, userID)
	case settingsCoef:
		return "🍽 <b>Коэффициент порций</b>\n\nВыберите значение или введите своё:", buildCoefficientKeyboard(), true
	case settingsReminders:
		if len(data.Params) > 1 {
			switch data.Params[1] {
			case reminderToggle:
				h.reminders.Toggle(ctx, userID)
			case reminderHour:
				if len(data.Params) > 2 {
					if hour, err := strconv.Atoi(data.Params[2]); err == nil && hour >= 0 && hour <= 23 {
						h.reminders.SetHour(ctx, userID, hour)
					}
				}
			}
		}
	}

	text, kb := h.renderSettings(ctx, userID)
	return text, kb, true
}

func (h *Handler) handleResetCallback(ctx context.Context, userID int64, data callbackData) (string, bool) {
	if len(data.Params) == 0 {
		return "", false
	}

	switch data.Params[0] {
	case resetConfirm:
		h.pending.Delete(userID)
		if err := h.reset.ResetUser(ctx, userID); err != nil {
			h.logger.Error("reset user", zap.Int64("user_id", userID), zap.Error(err))
			return msgInternalError, true
		}
		return msgResetDone, true
	case resetCancel:
		return msgResetCancelled, true
	}

	return "", false
}
