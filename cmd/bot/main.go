package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/annashrm/detox-course-bot/internal/config"
	"github.com/annashrm/detox-course-bot/internal/delivery/telegram"
	"github.com/annashrm/detox-course-bot/internal/infra/postgres"
	pgrepo "github.com/annashrm/detox-course-bot/internal/infra/postgres/repository"
	"github.com/annashrm/detox-course-bot/internal/logger"
	"github.com/annashrm/detox-course-bot/internal/repository"
	"github.com/annashrm/detox-course-bot/internal/service"
)

func main() {
	// Missing .env is fine: in production everything comes from the real
	// environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer zl.Sync()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		zl.Fatal("failed to create bot", zap.Error(err))
	}

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{Command: "start", Description: "Главный экран курса"},
		{Command: "day", Description: "Текущий день"},
		{Command: "days", Description: "Все дни курса"},
		{Command: "recipes", Description: "Рецепты"},
		{Command: "workouts", Description: "Тренировки и практики"},
		{Command: "info", Description: "Полезная информация"},
		{Command: "trackers", Description: "Вода, шаги и заметки"},
		{Command: "profile", Description: "Прогресс и замеры"},
		{Command: "preparation", Description: "Подготовка к курсу"},
		{Command: "shopping", Description: "Список покупок"},
		{Command: "leaderboard", Description: "Участники курса"},
		{Command: "settings", Description: "Настройки"},
		{Command: "reset", Description: "Сбросить все данные"},
		{Command: "help", Description: "Помощь"},
	}
	if _, err = bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		zl.Warn("failed to set bot commands", zap.Error(err))
	}

	zl.Info("authorized on telegram", zap.String("account", bot.Self.UserName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB.URL, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		zl.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	// Course catalogs are static JSON assets loaded once at startup.
	dayRepo, err := repository.NewDayRepository(filepath.Join(cfg.AssetsDir, "days.json"))
	if err != nil {
		zl.Fatal("failed to load days catalog", zap.Error(err))
	}
	recipeRepo, err := repository.NewRecipeRepository(filepath.Join(cfg.AssetsDir, "recipes.json"))
	if err != nil {
		zl.Fatal("failed to load recipes catalog", zap.Error(err))
	}
	workoutRepo, err := repository.NewWorkoutRepository(filepath.Join(cfg.AssetsDir, "workouts.json"))
	if err != nil {
		zl.Fatal("failed to load workouts catalog", zap.Error(err))
	}
	infoRepo, err := repository.NewInfoRepository(filepath.Join(cfg.AssetsDir, "info.json"))
	if err != nil {
		zl.Fatal("failed to load info catalog", zap.Error(err))
	}
	shoppingRepo, err := repository.NewShoppingRepository(filepath.Join(cfg.AssetsDir, "shopping.json"))
	if err != nil {
		zl.Fatal("failed to load shopping catalog", zap.Error(err))
	}
	preparationRepo, err := repository.NewPreparationRepository(filepath.Join(cfg.AssetsDir, "preparation.json"))
	if err != nil {
		zl.Fatal("failed to load preparation catalog", zap.Error(err))
	}

	stateRepo := pgrepo.NewStateRepository(pool)
	userRepo := pgrepo.NewUserRepository(pool)
	transactor := postgres.NewTransactor(pool)

	progressService := service.NewProgressService(stateRepo, zl)
	settingsService := service.NewSettingsService(stateRepo, zl)
	userService := service.NewUserService(userRepo)
	resetService := service.NewResetService(transactor)
	leaderboardService := service.NewLeaderboardService(rand.NewSource(time.Now().UnixNano()))

	handler := telegram.NewHandler(bot, zl, telegram.HandlerDeps{
		UserService: userService,
		Progress:    progressService,
		Settings:    settingsService,
		Reset:       resetService,
		Leaderboard: leaderboardService,
		Days:        dayRepo,
		Recipes:     recipeRepo,
		Workouts:    workoutRepo,
		Info:        infoRepo,
		Shopping:    shoppingRepo,
		Preparation: preparationRepo,
	})

	remindersService := service.NewRemindersService(stateRepo, userRepo, progressService, handler, zl)
	handler.SetReminders(remindersService)

	if cfg.Reminders.Enabled {
		if err := remindersService.Start(ctx); err != nil {
			zl.Fatal("failed to start reminder scheduler", zap.Error(err))
		}
		defer remindersService.Stop()
	}

	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		zl.Fatal("handler stopped", zap.Error(err))
	}

	zl.Info("shutdown signal received")
}
