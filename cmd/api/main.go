package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"health-tracker/config"
	_ "health-tracker/docs" // Swagger docs
	"health-tracker/internal/bootstrap"
	"health-tracker/internal/digest"
	healthHTTP "health-tracker/internal/health/delivery/http"
	tgDelivery "health-tracker/internal/health/delivery/telegram"
	"health-tracker/internal/health/usecase"
	"health-tracker/internal/httpserver"
	"health-tracker/internal/webhook"
	"health-tracker/pkg/log"
	"health-tracker/pkg/telegram"
)

// @title       Health Tracker API
// @description Chat-based exercise and food logging with model-assisted message classification.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
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

	logger.Info(ctx, "Starting Health Tracker...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage driver: %s", cfg.Storage.Driver)

	// 3. Storage
	storage, err := bootstrap.OpenStorage(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open storage: ", err)
		return
	}
	defer func() {
		if cerr := storage.Close(); cerr != nil {
			logger.Warnf(ctx, "Failed to close storage: %v", cerr)
		}
	}()

	// 4. Health domain
	clf := bootstrap.NewClassifier(cfg, logger)
	healthUC := usecase.New(logger, storage.Repo, clf, bootstrap.Location(cfg.Timezone, logger))
	healthHandler := healthHTTP.New(logger, healthUC)

	guard, err := webhook.NewGuard(webhook.SecurityConfig{
		Secret:          cfg.Webhook.Secret,
		AllowedIPs:      cfg.Webhook.AllowedIPs,
		RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
	}, logger)
	if err != nil {
		logger.Fatalf(ctx, "Invalid webhook settings: %v", err)
	}

	// 5. Telegram transport and weekly digest (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, healthUC, bot)

		if cfg.Telegram.WebhookURL != "" {
			if whErr := bot.SetWebhook(ctx, cfg.Telegram.WebhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "✅ Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
			}
		}

		if cfg.Report.Enabled {
			digestSvc, dErr := digest.New(logger, healthUC, bot, digest.Config{
				Schedule:     cfg.Report.Schedule,
				LookbackDays: cfg.Report.LookbackDays,
				Location:     bootstrap.Location(cfg.Timezone, logger),
			})
			if dErr != nil {
				logger.Error(ctx, "Failed to configure weekly digest: ", dErr)
				return
			}
			if dErr := digestSvc.Start(ctx); dErr != nil {
				logger.Error(ctx, "Failed to start weekly digest: ", dErr)
				return
			}
			defer digestSvc.Stop()
		}
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ReadyCheck:      storage.Ping,
		HealthHandler:   healthHandler,
		TelegramHandler: telegramHandler,
		WebhookGuard:    guard.Middleware(),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
