package telegram

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/annashrm/detox-course-bot/internal/domain/entities"
)

// renderHome renders the main screen depending on course mode.
func (h *Handler) renderHome(ctx context.Context, userID int64, firstName string) (string, tgbotapi.InlineKeyboardMarkup) {
	p := h.progress.Get(ctx, userID)

	switch p.Mode() {
	case entities.ModeActive:
		text := fmt.Sprintf(
			"🌿 <b>Детокс-курс</b>\n\n"+
				"📅 День %d из %d\n%s %.0f%%\n\n"+
				"✅ Дней завершено: %d\n\n"+
				"Откройте текущий день и отмечайте задания!",
			p.CurrentDay,
			entities.CourseLengthDays,
			buildProgressBar(len(p.CompletedDays), entities.CourseLengthDays, 10),
			p.CompletionPercent(),
			len(p.CompletedDays),
		)
		return text, buildHomeKeyboard(p)
	case entities.ModeCompleted:
		return msgCourseCompleted, buildHomeKeyboard(p)
	default:
		greeting := msgWelcome
		if firstName != "" {
			greeting = fmt.Sprintf("Привет, %s!\n\n%s", firstName, msgWelcome)
		}
		return greeting, buildHomeKeyboard(p)
	}
}

// renderDaysList renders the 20-day overview.
func (h *Handler) renderDaysList(ctx context.Context, userID int64) (string, tgbotapi.InlineKeyboardMarkup) {
	p := h.progress.Get(ctx, userID)

	var b strings.Builder
	b.WriteString("📅 <b>Дни курса</b>\n\n")
	b.WriteString(fmt.Sprintf("%s %.0f%%\n\n", buildProgressBar(len(p.CompletedDays), entities.CourseLengthDays, 10), p.CompletionPercent()))
	b.WriteString("✅ — завершён, ▶️ — текущий. Любой день можно открыть.")

	return b.String(), buildDaysKeyboard(p)
}

// renderDay renders one day page with its tasks, meals and goals.
func (h *Handler) renderDay(ctx context.Context, userID int64, dayNum int) (string, tgbotapi.InlineKeyboardMarkup, error) {
	day, err := h.days.GetByNumber(dayNum)
	if err != nil {
		return "", tgbotapi.InlineKeyboardMarkup{}, fmt.Errorf("get day %d: %w", dayNum, err)
	}

	p := h.progress.Get(ctx, userID)
	settings := h.settings.Get(ctx, userID)
	today := h.progress.Today()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("📅 <b>День %d из %d — %s</b>\n", day.Number, entities.CourseLengthDays, day.Title))
	if day.Subtitle != "" {
		b.WriteString(fmt.Sprintf("<i>%s</i>\n", day.Subtitle))
	}
	b.WriteString("\n")

	if containsDay(p.CompletedDays, day.Number) {
		b.WriteString("✅ День завершён\n\n")
	} else {
		required := len(day.RequiredTaskIDs())
		done := 0
		for _, id := range day.RequiredTaskIDs() {
			if p.IsTaskCompleted(day.Number, id) {
				done++
			}
		}
		b.WriteString(fmt.Sprintf("Задания: %d из %d %s\n\n", done, required, buildProgressBar(done, required, 10)))
	}

	for _, hl := range day.Highlights {
		b.WriteString(fmt.Sprintf("❗️ %s\n", hl))
	}
	if len(day.Highlights) > 0 {
		b.WriteString("\n")
	}

	if day.ShoppingReminder != nil {
		b.WriteString(fmt.Sprintf("🛒 %s\n\n", day.ShoppingReminder.Message))
	}

	b.WriteString(h.renderDayMeals(day, p.Coefficient))

	b.WriteString(fmt.Sprintf("💧 Цель по воде: %d мл (сегодня %d мл)\n", day.WaterGoalML, p.WaterFor(today)))
	b.WriteString(fmt.Sprintf("👟 Цель по шагам: %d\n", day.StepsGoal))
	if day.PlankSeconds > 0 {
		b.WriteString(fmt.Sprintf("💪 Планка: %d сек\n", day.PlankSeconds))
	}
	b.WriteString("\n")

	if len(day.Supplements) > 0 {
		b.WriteString("💊 <b>Добавки</b>\n")
		for _, s := range day.Supplements {
			b.WriteString(fmt.Sprintf("• %s — %s, %s\n", s.Name, s.Dosage, s.Timing))
		}
		b.WriteString("\n")
	}

	if !settings.TextMode && day.VideoFile != "" {
		b.WriteString(fmt.Sprintf("🎬 Видео дня: %s\n\n", day.VideoFile))
	}

	b.WriteString("Отмечайте задания кнопками ниже.")

	return b.String(), buildDayKeyboard(day, p), nil
}

// renderDayMeals renders the meal plan section: a timed kefir schedule or the
// normal lunch/dinner plan. Gram amounts are scaled by the coefficient.
func (h *Handler) renderDayMeals(day *entities.Day, coefficient float64) string {
	var b strings.Builder
	meals := day.Meals

	if meals.Kefir {
		b.WriteString("🥛 <b>Кефирный день</b>\n")
		if meals.PreMeal != "" {
			b.WriteString(fmt.Sprintf("Натощак: %s\n", meals.PreMeal))
		}
		for _, item := range meals.Schedule {
			b.WriteString(fmt.Sprintf("%s — %s\n", item.Time, scaleIngredient(item.Item, coefficient)))
		}
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString("🍽 <b>Питание</b>\n")
	if meals.PreMeal != "" {
		b.WriteString(fmt.Sprintf("Натощак: %s\n", meals.PreMeal))
	}
	if meals.Lunch != nil {
		b.WriteString(fmt.Sprintf("%s Обед: %s\n", meals.Lunch.Time, meals.Lunch.Name))
	}
	if len(meals.Garnish) > 0 {
		b.WriteString(fmt.Sprintf("Гарнир: %s\n", strings.Join(meals.Garnish, " / ")))
	}
	if len(meals.Snack) > 0 {
		b.WriteString(fmt.Sprintf("Перекус: %s\n", strings.Join(meals.Snack, " / ")))
	}
	if meals.Dinner != nil {
		line := fmt.Sprintf("%s Ужин: %s", meals.Dinner.Time, meals.Dinner.Name)
		if meals.Dinner.Skippable {
			line += " (можно пропустить)"
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

// renderRecipesMenu renders the recipe category menu.
func (h *Handler) renderRecipesMenu() (string, tgbotapi.InlineKeyboardMarkup) {
	return "🍳 <b>Рецепты</b>\n\nВыберите категорию:", buildRecipesMenuKeyboard()
}

// renderRecipeList renders all recipes of a category.
func (h *Handler) renderRecipeList(category string) (string, tgbotapi.InlineKeyboardMarkup) {
	title := category
	for _, c := range recipeCategories {
		if c.ID == category {
			title = c.Title
		}
	}

	recipes := h.recipes.GetByCategory(category)
	text := fmt.Sprintf("%s\n\nВыберите рецепт:", title)
	if len(recipes) == 0 {
		text = fmt.Sprintf("%s\n\nВ этой категории пока пусто.", title)
	}

	return text, buildRecipeListKeyboard(recipes)
}

// renderRecipe renders one recipe with ingredients scaled by the user's
// portion coefficient.
func (h *Handler) renderRecipe(ctx context.Context, userID int64, id string) (string, tgbotapi.InlineKeyboardMarkup, error) {
	recipe, err := h.recipes.GetByID(id)
	if err != nil {
		return "", tgbotapi.InlineKeyboardMarkup{}, fmt.Errorf("get recipe %s: %w", id, err)
	}

	p := h.progress.Get(ctx, userID)
	settings := h.settings.Get(ctx, userID)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s <b>%s</b>\n", recipe.Emoji, recipe.Name))
	if recipe.Time != "" {
		b.WriteString(fmt.Sprintf("⏱ %s\n", recipe.Time))
	}
	b.WriteString("\n")

	if len(recipe.Ingredients) > 0 {
		b.WriteString("<b>Ингредиенты</b>")
		if recipe.Multiply && p.Coefficient != 1 {
			b.WriteString(fmt.Sprintf(" (коэффициент %s)", formatCoefficient(p.Coefficient)))
		}
		b.WriteString("\n")
		for _, line := range recipe.Ingredients {
			if recipe.Multiply {
				line = scaleIngredient(line, p.Coefficient)
			}
			b.WriteString(fmt.Sprintf("• %s\n", line))
		}
		b.WriteString("\n")
	}

	if len(recipe.Steps) > 0 {
		b.WriteString("<b>Приготовление</b>\n")
		for i, step := range recipe.Steps {
			b.WriteString(fmt.Sprintf("%d. %s\n", i+1, step))
		}
		b.WriteString("\n")
	}

	if !settings.TextMode && recipe.VideoFile != "" {
		b.WriteString(fmt.Sprintf("🎬 Видео: %s\n", recipe.VideoFile))
	}

	return b.String(), buildRecipeKeyboard(recipe.Category), nil
}

// renderWorkoutsMenu renders the workout category menu.
func (h *Handler) renderWorkoutsMenu() (string, tgbotapi.InlineKeyboardMarkup) {
	return "🏋️ <b>Тренировки и практики</b>\n\nВыберите категорию:", buildWorkoutsMenuKeyboard()
}

// renderWorkoutList renders workouts of a category.
func (h *Handler) renderWorkoutList(ctx context.Context, userID int64, category string) (string, tgbotapi.InlineKeyboardMarkup) {
	title := category
	for _, c := range workoutCategories {
		if c.ID == category {
			title = c.Title
		}
	}

	settings := h.settings.Get(ctx, userID)
	workouts := h.workouts.GetByCategory(category)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s\n\n", title))
	if len(workouts) == 0 {
		b.WriteString("В этой категории пока пусто.")
	}
	for _, w := range workouts {
		b.WriteString(fmt.Sprintf("%s <b>%s</b>", w.Emoji, w.Name))
		if w.Duration != "" {
			b.WriteString(fmt.Sprintf(" — %s", w.Duration))
		}
		b.WriteString("\n")
		if !settings.TextMode && w.VideoFile != "" {
			b.WriteString(fmt.Sprintf("🎬 %s\n", w.VideoFile))
		}
		b.WriteString("\n")
	}

	return b.String(), buildWorkoutListKeyboard()
}

// renderInfoMenu renders the info category menu.
func (h *Handler) renderInfoMenu() (string, tgbotapi.InlineKeyboardMarkup) {
	return "ℹ️ <b>Полезная информация</b>\n\nВыберите раздел:", buildInfoMenuKeyboard()
}

// renderInfoList renders info items of a category.
func (h *Handler) renderInfoList(ctx context.Context, userID int64, category string) (string, tgbotapi.InlineKeyboardMarkup) {
	title := category
	for _, c := range infoCategories {
		if c.ID == category {
			title = c.Title
		}
	}

	settings := h.settings.Get(ctx, userID)
	items := h.info.GetByCategory(category)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s\n\n", title))
	if len(items) == 0 {
		b.WriteString("В этом разделе пока пусто.")
	}
	for _, item := range items {
		b.WriteString(fmt.Sprintf("%s <b>%s</b>\n", item.Emoji, item.Name))
		if item.Description != "" {
			b.WriteString(fmt.Sprintf("%s\n", item.Description))
		}
		if !settings.TextMode && item.VideoFile != "" {
			b.WriteString(fmt.Sprintf("🎬 %s\n", item.VideoFile))
		}
		b.WriteString("\n")
	}

	return b.String(), buildInfoListKeyboard()
}

// renderTrackers renders today's water, steps and note.
func (h *Handler) renderTrackers(ctx context.Context, userID int64) (string, tgbotapi.InlineKeyboardMarkup) {
	p := h.progress.Get(ctx, userID)
	today := h.progress.Today()

	waterGoal := 2000
	stepsGoal := 10000
	if day, err := h.days.GetByNumber(p.CurrentDay); err == nil {
		waterGoal = day.WaterGoalML
		stepsGoal = day.StepsGoal
	}

	water := p.WaterFor(today)
	steps := p.StepsFor(today)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("📊 <b>Трекеры — %s</b>\n\n", today))
	b.WriteString(fmt.Sprintf("💧 Вода: %d / %d мл\n%s\n\n", water, waterGoal, buildProgressBar(water, waterGoal, 10)))
	b.WriteString(fmt.Sprintf("👟 Шаги: %d / %d\n%s\n\n", steps, stepsGoal, buildProgressBar(steps, stepsGoal, 10)))
	if note := p.NoteFor(today); note != "" {
		b.WriteString(fmt.Sprintf("📝 Заметка: %s", note))
	} else {
		b.WriteString("📝 Заметки на сегодня нет.")
	}

	return b.String(), buildTrackersKeyboard()
}

// renderProfile renders course progress, measurements and the coefficient.
func (h *Handler) renderProfile(ctx context.Context, userID int64) (string, tgbotapi.InlineKeyboardMarkup) {
	p := h.progress.Get(ctx, userID)

	var b strings.Builder
	b.WriteString("👤 <b>Профиль</b>\n\n")

	switch p.Mode() {
	case entities.ModeNotStarted:
		b.WriteString("Курс ещё не начат. Нажмите /start, чтобы начать.\n\n")
	case entities.ModeCompleted:
		b.WriteString("🎉 Курс пройден полностью!\n\n")
	default:
		b.WriteString(fmt.Sprintf("📅 День %d из %d, начало %s\n", p.CurrentDay, entities.CourseLengthDays, p.StartDate))
	}

	b.WriteString(fmt.Sprintf("%s %.0f%%\n", buildProgressBar(len(p.CompletedDays), entities.CourseLengthDays, 10), p.CompletionPercent()))
	b.WriteString(fmt.Sprintf("✅ Дней завершено: %d\n\n", len(p.CompletedDays)))

	b.WriteString("⚖️ <b>Замеры</b>\n")
	slots := []struct {
		Slot  entities.MeasurementSlot
		Title string
	}{
		{entities.SlotInitial, "Старт"},
		{entities.SlotWeek1, "Неделя 1"},
		{entities.SlotWeek2, "Неделя 2"},
		{entities.SlotFinal, "Финал"},
	}
	for _, s := range slots {
		m := p.Measurements.Slot(s.Slot)
		b.WriteString(fmt.Sprintf("%s: %s\n", s.Title, formatMeasurement(m)))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("🍽 Коэффициент порций: %s", formatCoefficient(p.Coefficient)))

	return b.String(), buildProfileKeyboard()
}

// formatMeasurement renders one checkpoint as a compact line.
func formatMeasurement(m *entities.Measurement) string {
	if m == nil || m.Date == "" {
		return "—"
	}

	part := func(v *float64, unit string) string {
		if v == nil {
			return "—"
		}
		return fmt.Sprintf("%s %s", formatCoefficient(*v), unit)
	}

	return fmt.Sprintf("%s / %s / %s (%s)",
		part(m.Weight, "кг"),
		part(m.Waist, "см"),
		part(m.Hips, "см"),
		m.Date,
	)
}

// renderPreparation renders the pre-course checklist.
func (h *Handler) renderPreparation(ctx context.Context, userID int64) (string, tgbotapi.InlineKeyboardMarkup) {
	p := h.progress.Get(ctx, userID)
	items := h.preparation.GetAll()

	done := 0
	for _, item := range items {
		if p.IsPreparationItemDone(item.ID) {
			done++
		}
	}

	var b strings.Builder
	b.WriteString("📋 <b>Подготовка к курсу</b>\n\n")
	b.WriteString(fmt.Sprintf("Готово: %d из %d %s\n\n", done, len(items), buildProgressBar(done, len(items), 10)))
	for _, item := range items {
		b.WriteString(fmt.Sprintf("%s <b>%s</b>\n%s\n\n", item.Emoji, item.Title, item.Description))
	}
	b.WriteString("Отмечайте готовое кнопками ниже.")

	return b.String(), buildPreparationKeyboard(items, p)
}

// renderShoppingMenu renders the shopping category menu.
func (h *Handler) renderShoppingMenu(ctx context.Context, userID int64) (string, tgbotapi.InlineKeyboardMarkup) {
	p := h.progress.Get(ctx, userID)
	categories := h.shopping.Categories()

	total := 0
	done := 0
	for _, c := range categories {
		for _, item := range c.Items {
			total++
			if p.IsShoppingItemDone(item.ID) {
				done++
			}
		}
	}

	text := fmt.Sprintf(
		"🛒 <b>Список покупок</b>\n\nКуплено: %d из %d %s\n\nВыберите категорию:",
		done, total, buildProgressBar(done, total, 10),
	)

	return text, buildShoppingMenuKeyboard(categories, p)
}

// renderShoppingCategory renders one shopping category with item toggles.
func (h *Handler) renderShoppingCategory(ctx context.Context, userID int64, categoryID string) (string, tgbotapi.InlineKeyboardMarkup, error) {
	category, err := h.shopping.GetCategory(categoryID)
	if err != nil {
		return "", tgbotapi.InlineKeyboardMarkup{}, fmt.Errorf("get shopping category %s: %w", categoryID, err)
	}

	p := h.progress.Get(ctx, userID)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s <b>%s</b>\n\n", category.Emoji, category.Title))
	for _, item := range category.Items {
		b.WriteString(fmt.Sprintf("%s %s — %s", checkbox(p.IsShoppingItemDone(item.ID)), item.Name, item.Amount))
		if item.Note != "" {
			b.WriteString(fmt.Sprintf(" (%s)", item.Note))
		}
		b.WriteString("\n")
	}

	return b.String(), buildShoppingCategoryKeyboard(category, p), nil
}

// renderLeaderboard renders the participants screen.
func (h *Handler) renderLeaderboard(ctx context.Context, userID int64) (string, tgbotapi.InlineKeyboardMarkup) {
	p := h.progress.Get(ctx, userID)

	currentDay := p.CurrentDay
	if currentDay < 1 {
		currentDay = 1
	}

	entries := h.leaderboard.Generate(currentDay)
	sameDay := h.leaderboard.SameDay(entries, currentDay)

	var b strings.Builder
	b.WriteString("🏆 <b>Участники курса</b>\n\n")
	b.WriteString(fmt.Sprintf("👥 Сегодня на дне %d вместе с вами: %d\n\n", currentDay, len(sameDay)))

	medals := []string{"🥇", "🥈", "🥉"}
	for i, e := range entries {
		rank := fmt.Sprintf("%d.", i+1)
		if i < len(medals) {
			rank = medals[i]
		}

		online := ""
		if e.Online {
			online = " 🟢"
		}

		b.WriteString(fmt.Sprintf(
			"%s %s %s%s — день %d, задач %d, серия %d\n",
			rank, e.Emoji, e.Name, online, e.Day, e.TasksCompleted, e.Streak,
		))
	}

	return b.String(), buildLeaderboardKeyboard()
}

// renderSettings renders the settings screen.
func (h *Handler) renderSettings(ctx context.Context, userID int64) (string, tgbotapi.InlineKeyboardMarkup) {
	settings := h.settings.Get(ctx, userID)
	p := h.progress.Get(ctx, userID)
	rem := h.reminders.Get(ctx, userID)

	textMode := "выключен"
	if settings.TextMode {
		textMode = "включён"
	}

	reminderStatus := "🔕 выключены"
	if rem.Enabled {
		reminderStatus = fmt.Sprintf("🔔 включены, в %d:00", rem.Hour)
	}

	text := fmt.Sprintf(
		"⚙️ <b>Настройки</b>\n\n"+
			"📝 Текстовый режим: %s\n"+
			"🍽 Коэффициент порций: %s\n"+
			"⏰ Напоминания: %s",
		textMode,
		formatCoefficient(p.Coefficient),
		reminderStatus,
	)

	return text, buildSettingsKeyboard(rem)
}
