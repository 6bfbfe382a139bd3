package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"todochat/config"
	_ "todochat/docs" // Swagger docs
	chatComposer "todochat/internal/chat/composer"
	chatHTTP "todochat/internal/chat/delivery/http"
	tgDelivery "todochat/internal/chat/delivery/telegram"
	chatParser "todochat/internal/chat/parser"
	chatUC "todochat/internal/chat/usecase"
	convSqlite "todochat/internal/conversation/repository/sqlite"
	"todochat/internal/httpserver"
	"todochat/internal/middleware"
	taskHTTP "todochat/internal/task/delivery/http"
	taskSqlite "todochat/internal/task/repository/sqlite"
	taskUC "todochat/internal/task/usecase"
	"todochat/pkg/completion"
	"todochat/pkg/datemath"
	"todochat/pkg/log"
	"todochat/pkg/sqlite"
	"todochat/pkg/telegram"
)

// @title       todochat API
// @description Natural-language todo manager: chat commands, task CRUD, Telegram webhook.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting todochat...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "SQLite path: %s", cfg.SQLite.Path)

	// 3. Storage
	db, err := sqlite.Open(cfg.SQLite.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()

	taskRepo, err := taskSqlite.New(db, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize task repository: ", err)
		return
	}
	convRepo, err := convSqlite.New(db, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize conversation repository: ", err)
		return
	}

	// 4. Task domain
	taskUseCase := taskUC.New(logger, taskRepo)

	// 5. Chat domain
	timezone := cfg.Environment.Timezone
	dateParser, dtErr := datemath.NewParser(timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, dtErr)
		dateParser, _ = datemath.NewParser("UTC")
	}

	// The completion client is optional: without an API key general queries
	// degrade to canned replies.
	var completionClient completion.IClient
	if cfg.Completion.APIKey != "" {
		completionClient, err = completion.New(completion.Config{
			APIKey:  cfg.Completion.APIKey,
			BaseURL: cfg.Completion.BaseURL,
			Model:   cfg.Completion.Model,
			Timeout: cfg.Completion.Timeout,
		})
		if err != nil {
			logger.Warnf(ctx, "Completion client not available (optional): %v", err)
			completionClient = nil
		} else {
			logger.Info(ctx, "Completion client initialized")
		}
	} else {
		logger.Warn(ctx, "COMPLETION_API_KEY is missing, general queries use canned replies")
	}

	composer := chatComposer.New(logger, completionClient)
	parser := chatParser.New(dateParser)
	chatUseCase := chatUC.New(logger, taskUseCase, convRepo, parser, composer)

	// 6. Delivery
	mw := middleware.New(logger, cfg.RateLimit.ChatPerMin)
	chatHandler := chatHTTP.New(logger, chatUseCase)
	taskHandler := taskHTTP.New(logger, taskUseCase)

	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, chatUseCase, telegramBot)

		if cfg.Telegram.WebhookURL != "" {
			if whErr := telegramBot.SetWebhook(cfg.Telegram.WebhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "TELEGRAM_BOT_TOKEN is missing, Telegram delivery disabled")
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      mw,
		ChatHandler:     chatHandler,
		TelegramHandler: telegramHandler,
		TaskHandler:     taskHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
