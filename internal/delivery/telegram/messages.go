// messages.go contains message templates used by the Telegram delivery layer.

package telegram

// Error and service messages.
const (
	msgInternalError     = "Что-то пошло не так. Попробуйте позже."
	msgUnknownCommand    = "Неизвестная команда. Нажмите /help для списка команд."
	msgDayUnavailable    = "Не удалось открыть день. Попробуйте позже."
	msgRecipeUnavailable = "Не удалось открыть рецепт. Попробуйте позже."

	msgInvalidDayNumber = "Некорректный номер дня. Введите число от 1 до 20."
	msgInvalidSteps     = "Некорректное число шагов. Введите целое число, например 8500."
	msgInvalidNumber    = "Некорректное число. Введите значение, например 65.5, или «-» чтобы пропустить."

	msgNoPendingInput = "Я не ждал от вас ввода. Нажмите /help для списка команд."
)

const msgHelp = "📖 <b>Команды бота</b>\n\n" +
	"/start — главный экран курса\n" +
	"/day — текущий день\n" +
	"/days — все 20 дней\n" +
	"/recipes — рецепты\n" +
	"/workouts — тренировки и практики\n" +
	"/info — полезная информация\n" +
	"/trackers — вода, шаги и заметки\n" +
	"/profile — прогресс и замеры\n" +
	"/preparation — подготовка к курсу\n" +
	"/shopping — список покупок\n" +
	"/leaderboard — участники курса\n" +
	"/settings — настройки\n" +
	"/reset — сбросить все данные"

const msgWelcome = "🌿 <b>Детокс-курс на 20 дней</b>\n\n" +
	"Перезагрузка питания и привычек: ежедневные задания, рецепты, " +
	"тренировки, трекеры воды и шагов.\n\n" +
	"Перед стартом загляните в /preparation и /shopping — там список " +
	"подготовки и покупок на первую неделю.\n\n" +
	"Когда будете готовы — начинайте!"

const msgCourseCompleted = "🎉 <b>Поздравляем!</b>\n\n" +
	"Вы прошли все 20 дней курса. Загляните в /profile, чтобы сравнить " +
	"замеры до и после.\n\n" +
	"Данные курса можно сбросить через /reset и пройти его заново."

const msgResetConfirm = "⚠️ <b>Сброс данных</b>\n\n" +
	"Будут удалены прогресс курса, замеры, чек-листы, трекеры и настройки. " +
	"Это действие нельзя отменить.\n\nПродолжить?"

const (
	msgResetDone      = "Все данные удалены. Нажмите /start, чтобы начать заново."
	msgResetCancelled = "Сброс отменён."
)

// Prompts for awaited text input.
const (
	msgPromptSteps       = "👟 Введите количество шагов за сегодня, например 8500."
	msgPromptNote        = "📝 Напишите заметку на сегодня одним сообщением."
	msgPromptCoefficient = "🍽 Введите свой коэффициент порций, например 1.1."
	msgPromptWeight      = "⚖️ Введите вес в кг, например 65.5, или «-» чтобы пропустить."
	msgPromptWaist       = "📏 Введите обхват талии в см, или «-» чтобы пропустить."
	msgPromptHips        = "📏 Введите обхват бёдер в см, или «-» чтобы пропустить."
)
