package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/annashrm/detox-course-bot/internal/domain/entities"
)

// Catalog categories in display order.
var recipeCategories = []struct {
	ID    string
	Title string
}{
	{entities.RecipeCategoryBreakfasts, "🥞 Завтраки"},
	{entities.RecipeCategoryDinners, "🍽 Ужины"},
	{entities.RecipeCategoryGarnish, "🥗 Гарниры"},
	{entities.RecipeCategorySauces, "🥣 Соусы"},
	{entities.RecipeCategoryExtra, "✨ Дополнительно"},
}

var workoutCategories = []struct {
	ID    string
	Title string
}{
	{"practices", "🧘 Практики"},
	{"workouts", "💪 Тренировки"},
	{"cardio", "🏃 Кардио"},
	{"procedures", "🛁 Процедуры"},
	{"sleep", "😴 Сон"},
}

var infoCategories = []struct {
	ID    string
	Title string
}{
	{"intro", "🚀 Старт"},
	{"basics", "📚 Основы"},
	{"drinks", "☕ Напитки"},
	{"supplements", "💊 Добавки"},
	{"food", "🍽 Продукты"},
	{"health", "❤️ Здоровье"},
	{"final", "🌟 После курса"},
}

// buildHomeKeyboard builds the main screen keyboard depending on course mode.
func buildHomeKeyboard(p *entities.CourseProgress) tgbotapi.InlineKeyboardMarkup {
	switch p.Mode() {
	case entities.ModeActive:
		return tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("📅 Текущий день", buildDayCallback(p.CurrentDay)),
				tgbotapi.NewInlineKeyboardButtonData("🗓 Все дни", buildDaysCallback()),
			),
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("📊 Трекеры", buildTrackersCallback()),
				tgbotapi.NewInlineKeyboardButtonData("👤 Профиль", buildProfileCallback()),
			),
		)
	case entities.ModeCompleted:
		return tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("👤 Профиль", buildProfileCallback()),
			),
		)
	default:
		return tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("🚀 Начать курс", buildCourseStartCallback()),
			),
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("📋 Подготовка", buildPrepMenuCallback()),
				tgbotapi.NewInlineKeyboardButtonData("🛒 Покупки", buildShopCallback()),
			),
		)
	}
}

func buildPrepMenuCallback() string {
	return actionPrep
}

// buildDaysKeyboard builds the 20-day grid, five buttons per row, with a
// status mark on each day.
func buildDaysKeyboard(p *entities.CourseProgress) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton

	for day := 1; day <= entities.CourseLengthDays; day++ {
		label := fmt.Sprintf("%d", day)
		switch p.DayStatusFor(day) {
		case entities.StatusCompleted:
			label = fmt.Sprintf("✅%d", day)
		case entities.StatusCurrent:
			label = fmt.Sprintf("▶️%d", day)
		}

		row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, buildDayCallback(day)))
		if len(row) == 5 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildDayKeyboard builds the day page keyboard: one toggle button per task,
// water shortcuts, the finish button and day navigation.
func buildDayKeyboard(day *entities.Day, p *entities.CourseProgress) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	addTask := func(id, emoji, text string) {
		label := fmt.Sprintf("%s %s %s", checkbox(p.IsTaskCompleted(day.Number, id)), emoji, truncateLabel(text, 32))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildTaskCallback(day.Number, id)),
		))
	}

	for _, t := range day.Morning {
		addTask(t.ID, t.Emoji, t.Text)
	}
	for _, e := range day.Exercises {
		addTask(e.ID, "🏃", e.Name)
	}
	for _, t := range day.Evening {
		addTask(t.ID, t.Emoji, t.Text)
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("💧 +250 мл", buildDayWaterCallback(day.Number, 250)),
		tgbotapi.NewInlineKeyboardButtonData("💧 +500 мл", buildDayWaterCallback(day.Number, 500)),
	))

	if !containsDay(p.CompletedDays, day.Number) && dayTasksDone(day, p) {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏁 Завершить день", buildDayCompleteCallback(day.Number)),
		))
	}

	var nav []tgbotapi.InlineKeyboardButton
	if day.Number > 1 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("◀️", buildDayCallback(day.Number-1)))
	}
	nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("📅 Все дни", buildDaysCallback()))
	if day.Number < entities.CourseLengthDays {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("▶️", buildDayCallback(day.Number+1)))
	}
	rows = append(rows, nav)

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func containsDay(days []int, day int) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}

// dayTasksDone reports whether every required task of the day is checked off.
// This gate exists only in the keyboard: the progress store never enforces it.
func dayTasksDone(day *entities.Day, p *entities.CourseProgress) bool {
	for _, id := range day.RequiredTaskIDs() {
		if !p.IsTaskCompleted(day.Number, id) {
			return false
		}
	}
	return true
}

// buildRecipesMenuKeyboard builds the recipe category menu.
func buildRecipesMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, c := range recipeCategories {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(c.Title, buildRecipesCallback(c.ID)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildRecipeListKeyboard builds buttons for every recipe of a category.
func buildRecipeListKeyboard(recipes []*entities.Recipe) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, r := range recipes {
		label := truncateLabel(fmt.Sprintf("%s %s", r.Emoji, r.Name), 40)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildRecipeCallback(r.ID)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("« Категории", buildRecipesCallback()),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildRecipeKeyboard builds the back button under a recipe page.
func buildRecipeKeyboard(category string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("« Назад к списку", buildRecipesCallback(category)),
		),
	)
}

func buildWorkoutsMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, c := range workoutCategories {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(c.Title, buildWorkoutsCallback(c.ID)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func buildWorkoutListKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("« Категории", buildWorkoutsCallback()),
		),
	)
}

func buildInfoMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, c := range infoCategories {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(c.Title, buildInfoCallback(c.ID)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func buildInfoListKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("« Категории", buildInfoCallback()),
		),
	)
}

// buildTrackersKeyboard builds the trackers screen keyboard.
func buildTrackersKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💧 +250 мл", buildTrackersWaterCallback(250)),
			tgbotapi.NewInlineKeyboardButtonData("💧 +500 мл", buildTrackersWaterCallback(500)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👟 Ввести шаги", buildTrackersStepsCallback()),
			tgbotapi.NewInlineKeyboardButtonData("📝 Заметка", buildTrackersNoteCallback()),
		),
	)
}

// buildProfileKeyboard builds the profile screen keyboard with measurement
// slots and the coefficient picker.
func buildProfileKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📏 Старт", buildMeasureCallback(string(entities.SlotInitial))),
			tgbotapi.NewInlineKeyboardButtonData("📏 Неделя 1", buildMeasureCallback(string(entities.SlotWeek1))),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📏 Неделя 2", buildMeasureCallback(string(entities.SlotWeek2))),
			tgbotapi.NewInlineKeyboardButtonData("📏 Финал", buildMeasureCallback(string(entities.SlotFinal))),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🍽 Коэффициент порций", buildSettingsCoefCallback()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏆 Участники", buildLeaderboardRefreshCallback()),
		),
	)
}

// buildCoefficientKeyboard builds the portion coefficient picker.
func buildCoefficientKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("0.8", buildCoefCallback("0.8")),
			tgbotapi.NewInlineKeyboardButtonData("1", buildCoefCallback("1")),
			tgbotapi.NewInlineKeyboardButtonData("1.2", buildCoefCallback("1.2")),
			tgbotapi.NewInlineKeyboardButtonData("1.5", buildCoefCallback("1.5")),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✏️ Свой", buildCoefCallback("custom")),
		),
	)
}

// buildPreparationKeyboard builds toggle buttons for the preparation checklist.
func buildPreparationKeyboard(items []*entities.PreparationItem, p *entities.CourseProgress) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, item := range items {
		label := fmt.Sprintf("%s %s %s", checkbox(p.IsPreparationItemDone(item.ID)), item.Emoji, truncateLabel(item.Title, 30))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildPrepCallback(item.ID)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildShoppingMenuKeyboard builds the shopping category menu with per-category
// checked counters.
func buildShoppingMenuKeyboard(categories []*entities.ShoppingCategory, p *entities.CourseProgress) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, c := range categories {
		done := 0
		for _, item := range c.Items {
			if p.IsShoppingItemDone(item.ID) {
				done++
			}
		}
		label := fmt.Sprintf("%s %s (%d/%d)", c.Emoji, c.Title, done, len(c.Items))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(truncateLabel(label, 44), buildShopCallback(c.ID)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildShoppingCategoryKeyboard builds toggle buttons for items of one
// shopping category.
func buildShoppingCategoryKeyboard(category *entities.ShoppingCategory, p *entities.CourseProgress) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, item := range category.Items {
		label := fmt.Sprintf("%s %s", checkbox(p.IsShoppingItemDone(item.ID)), truncateLabel(item.Name, 34))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildShopCallback(category.ID, item.ID)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("« Категории", buildShopCallback()),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildSettingsKeyboard builds the settings screen keyboard.
func buildSettingsKeyboard(rem *entities.UserReminders) tgbotapi.InlineKeyboardMarkup {
	reminderLabel := "🔔 Включить напоминания"
	if rem.Enabled {
		reminderLabel = "🔕 Выключить напоминания"
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📝 Текстовый режим", buildSettingsTextModeCallback()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🍽 Коэффициент порций", buildSettingsCoefCallback()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(reminderLabel, buildReminderToggleCallback()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("8:00", buildReminderHourCallback(8)),
			tgbotapi.NewInlineKeyboardButtonData("9:00", buildReminderHourCallback(9)),
			tgbotapi.NewInlineKeyboardButtonData("12:00", buildReminderHourCallback(12)),
			tgbotapi.NewInlineKeyboardButtonData("18:00", buildReminderHourCallback(18)),
			tgbotapi.NewInlineKeyboardButtonData("20:00", buildReminderHourCallback(20)),
		),
	)
}

// buildResetKeyboard builds the reset confirmation keyboard.
func buildResetKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗑 Да, удалить всё", buildResetConfirmCallback()),
			tgbotapi.NewInlineKeyboardButtonData("Отмена", buildResetCancelCallback()),
		),
	)
}

// buildLeaderboardKeyboard builds the leaderboard refresh button.
func buildLeaderboardKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Обновить", buildLeaderboardRefreshCallback()),
		),
	)
}
