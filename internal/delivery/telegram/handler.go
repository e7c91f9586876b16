package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/annashrm/detox-course-bot/internal/domain/entities"
	"github.com/annashrm/detox-course-bot/internal/service"
	"github.com/annashrm/detox-course-bot/internal/storage"
)

type UserService interface {
	EnsureUser(ctx context.Context, userID, chatID int64, firstName, lastName, username, languageCode string) error
}

type ProgressService interface {
	Get(ctx context.Context, userID int64) *entities.CourseProgress
	StartCourse(ctx context.Context, userID int64) *entities.CourseProgress
	CompleteDay(ctx context.Context, userID int64, day int) *entities.CourseProgress
	ToggleTask(ctx context.Context, userID int64, day int, taskID string) *entities.CourseProgress
	UpdateMeasurements(ctx context.Context, userID int64, slot entities.MeasurementSlot, patch entities.MeasurementPatch) *entities.CourseProgress
	SetCoefficient(ctx context.Context, userID int64, value float64) *entities.CourseProgress
	TogglePreparationItem(ctx context.Context, userID int64, itemID string) *entities.CourseProgress
	ToggleShoppingItem(ctx context.Context, userID int64, itemID string) *entities.CourseProgress
	LogWater(ctx context.Context, userID int64, date string, amount int) *entities.CourseProgress
	LogSteps(ctx context.Context, userID int64, date string, count int) *entities.CourseProgress
	AddNote(ctx context.Context, userID int64, date string, text string) *entities.CourseProgress
	Today() string
}

type SettingsService interface {
	Get(ctx context.Context, userID int64) *entities.UserSettings
	ToggleTextMode(ctx context.Context, userID int64) bool
	SetCoefficient(ctx context.Context, userID int64, value float64)
}

type RemindersService interface {
	Get(ctx context.Context, userID int64) *entities.UserReminders
	Toggle(ctx context.Context, userID int64) *entities.UserReminders
	SetHour(ctx context.Context, userID int64, hour int) *entities.UserReminders
}

type ResetService interface {
	ResetUser(ctx context.Context, userID int64) error
}

type LeaderboardService interface {
	Generate(currentDay int) []service.LeaderboardEntry
	SameDay(entries []service.LeaderboardEntry, day int) []service.LeaderboardEntry
}

type DayCatalog interface {
	GetByNumber(number int) (*entities.Day, error)
	GetAll() []*entities.Day
}

type RecipeCatalog interface {
	GetByID(id string) (*entities.Recipe, error)
	GetByCategory(category string) []*entities.Recipe
}

type WorkoutCatalog interface {
	GetByCategory(category string) []*entities.Workout
}

type InfoCatalog interface {
	GetByCategory(category string) []*entities.InfoItem
}

type ShoppingCatalog interface {
	Categories() []*entities.ShoppingCategory
	GetCategory(id string) (*entities.ShoppingCategory, error)
}

type PreparationCatalog interface {
	GetAll() []*entities.PreparationItem
	RequiredCount() int
}

type Handler struct {
	bot         *tgbotapi.BotAPI
	logger      *zap.Logger
	userService UserService
	progress    ProgressService
	settings    SettingsService
	reminders   RemindersService
	reset       ResetService
	leaderboard LeaderboardService
	days        DayCatalog
	recipes     RecipeCatalog
	workouts    WorkoutCatalog
	info        InfoCatalog
	shopping    ShoppingCatalog
	preparation PreparationCatalog
	pending     *storage.PendingStorage
}

type HandlerDeps struct {
	UserService UserService
	Progress    ProgressService
	Settings    SettingsService
	Reset       ResetService
	Leaderboard LeaderboardService
	Days        DayCatalog
	Recipes     RecipeCatalog
	Workouts    WorkoutCatalog
	Info        InfoCatalog
	Shopping    ShoppingCatalog
	Preparation PreparationCatalog
}

func NewHandler(bot *tgbotapi.BotAPI, logger *zap.Logger, deps HandlerDeps) *Handler {
	return &Handler{
		bot:         bot,
		logger:      logger,
		userService: deps.UserService,
		progress:    deps.Progress,
		settings:    deps.Settings,
		reset:       deps.Reset,
		leaderboard: deps.Leaderboard,
		days:        deps.Days,
		recipes:     deps.Recipes,
		workouts:    deps.Workouts,
		info:        deps.Info,
		shopping:    deps.Shopping,
		preparation: deps.Preparation,
		pending:     storage.NewPendingStorage(),
	}
}

// SetReminders attaches the reminder service. It is set after construction
// because the service in turn needs the handler as its notifier.
func (h *Handler) SetReminders(r RemindersService) {
	h.reminders = r
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	from := update.Message.From
	chatID := update.Message.Chat.ID

	h.logger.Debug("update received",
		zap.Int64("chat_id", chatID),
		zap.String("text", update.Message.Text),
	)

	err := h.userService.EnsureUser(
		ctx,
		from.ID,
		chatID,
		from.FirstName,
		from.LastName,
		from.UserName,
		from.LanguageCode,
	)
	if err != nil {
		h.logger.Error("failed to ensure user",
			zap.Int64("user_id", from.ID),
			zap.Error(err),
		)
	}

	if update.Message.IsCommand() {
		h.pending.Delete(from.ID)

		switch update.Message.Command() {
		case "start":
			_ = h.withErrorHandling(h.handleStart(from.ID, from.FirstName))(ctx, chatID)
		case "day":
			_ = h.withErrorHandling(h.handleToday(from.ID))(ctx, chatID)
		case "days":
			_ = h.withErrorHandling(h.handleDays(from.ID))(ctx, chatID)
		case "recipes":
			_ = h.withErrorHandling(h.handleRecipes())(ctx, chatID)
		case "workouts":
			_ = h.withErrorHandling(h.handleWorkouts())(ctx, chatID)
		case "info":
			_ = h.withErrorHandling(h.handleInfo())(ctx, chatID)
		case "trackers":
			_ = h.withErrorHandling(h.handleTrackers(from.ID))(ctx, chatID)
		case "profile":
			_ = h.withErrorHandling(h.handleProfile(from.ID))(ctx, chatID)
		case "preparation":
			_ = h.withErrorHandling(h.handlePreparation(from.ID))(ctx, chatID)
		case "shopping":
			_ = h.withErrorHandling(h.handleShopping(from.ID))(ctx, chatID)
		case "leaderboard":
			_ = h.withErrorHandling(h.handleLeaderboard(from.ID))(ctx, chatID)
		case "settings":
			_ = h.withErrorHandling(h.handleSettings(from.ID))(ctx, chatID)
		case "reset":
			_ = h.withErrorHandling(h.handleReset())(ctx, chatID)
		case "help":
			h.send(newHTMLMessage(chatID, msgHelp))
		default:
			h.send(newHTMLMessage(chatID, msgUnknownCommand))
		}

		return
	}

	_ = h.withErrorHandling(h.handleTextInput(from.ID, update.Message.Text))(ctx, chatID)
}

func (h *Handler) sendError(chatID int64, text string) {
	h.send(newHTMLMessage(chatID, text))
}

func (h *Handler) send(c tgbotapi.Chattable) error {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
		return err
	}
	return nil
}

// SendReminder delivers a scheduled nudge. Implements service.ReminderNotifier.
func (h *Handler) SendReminder(chatID int64, text string) error {
	return h.send(newHTMLMessage(chatID, text))
}
