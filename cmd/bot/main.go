package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"multilingual/internal/config"
	"multilingual/internal/handler"
	"multilingual/internal/middleware"
	"multilingual/internal/navigation"
	"multilingual/internal/repository/sqlstore"
	"multilingual/internal/service"
	"multilingual/internal/storage"
	"multilingual/internal/worker"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// queueSize bounds the mutations waiting to be written
const queueSize = 64

func main() {
	// Initialize logger
	zapCfg := zap.NewProductionConfig()
	logger, err := zapCfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Multilingual Bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}
	zapCfg.Level.SetLevel(cfg.LogLevel.Level())

	logger.Info("Configuration loaded successfully",
		zap.String("db_driver", cfg.Database.Driver),
		zap.Stringer("log_level", cfg.LogLevel),
		zap.Bool("owner_only", cfg.OwnerID != 0),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Open the store with retries
	db, err := storage.Open(ctx, cfg.Database, storage.DefaultOptions(cfg.Database.Driver), logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connection established")

	// Run migrations
	if err := storage.Migrate(db, cfg.Database.Driver, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	logger.Info("Database migrations completed")

	// Initialize repositories
	wordRepo := sqlstore.NewWordRepo(db)
	languageRepo := sqlstore.NewLanguageRepo(db)

	// Every mutation goes through one ordered queue
	queue := worker.NewQueue(queueSize, logger)

	// Initialize services
	wordService := service.NewWordService(wordRepo, queue, logger)
	languageService := service.NewLanguageService(languageRepo, wordService, queue, logger)

	if err := wordService.Load(ctx); err != nil {
		logger.Fatal("Failed to load words", zap.Error(err))
	}
	if err := languageService.Load(ctx); err != nil {
		logger.Fatal("Failed to load languages", zap.Error(err))
	}

	logger.Info("Start screen chosen",
		zap.String("route", string(navigation.StartRoute(languageService.IsConfigured()))),
	)

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c tele.Context) {
			logger.Error("Update handling failed", zap.Error(err))
		},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	bot.Use(middleware.OwnerOnly(cfg.OwnerID, logger))

	// Initialize handler
	h := handler.NewHandler(wordService, languageService, cfg.Game, logger)
	h.RegisterHandlers(bot)

	logger.Info("Handlers registered")

	// Keep running games in sync with the vocabulary
	go h.Watch(ctx)

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()
	cancel()
	queue.Close()
	wordService.Words().Close()
	languageService.Languages().Close()

	logger.Info("Bot stopped gracefully")
}
