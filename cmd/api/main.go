package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"checkey/config"
	digestCron "checkey/internal/digest/delivery/cron"
	digestUsecase "checkey/internal/digest/usecase"
	"checkey/internal/extract"
	extractHTTP "checkey/internal/extract/delivery/http"
	tgDelivery "checkey/internal/extract/delivery/telegram"
	extractUsecase "checkey/internal/extract/usecase"
	"checkey/internal/httpserver"
	taskHTTP "checkey/internal/task/delivery/http"
	taskSqlite "checkey/internal/task/repository/sqlite"
	taskUsecase "checkey/internal/task/usecase"
	"checkey/pkg/gcalendar"
	"checkey/pkg/krtime"
	"checkey/pkg/log"
	"checkey/pkg/openai"
	"checkey/pkg/telegram"
)

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

	logger.Info(ctx, "Starting Checkey...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Korean time resolver
	resolver, err := krtime.NewResolver(cfg.Environment.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Environment.Timezone, err)
		resolver, _ = krtime.NewResolver("UTC")
	}

	// 4. Storage
	db, err := taskSqlite.NewDB(cfg.Database.DSN)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	taskRepo := taskSqlite.New(logger, db)

	// 5. LLM suggestion client (optional; extraction degrades to local rules)
	var completer extract.Completer
	if cfg.OpenAI.APIKey != "" {
		aiClient := openai.NewClient(cfg.OpenAI.APIKey)
		if cfg.OpenAI.BaseURL != "" {
			aiClient.SetAPIURL(cfg.OpenAI.BaseURL)
		}
		if cfg.OpenAI.Model != "" {
			aiClient.SetModel(cfg.OpenAI.Model)
		}
		completer = aiClient
		logger.Info(ctx, "LLM suggestion client initialized")
	} else {
		logger.Warn(ctx, "OPENAI_API_KEY missing, extraction runs on local rules only")
	}

	// 6. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 7. UseCases
	extractUC := extractUsecase.New(logger, completer, resolver)
	taskUC := taskUsecase.New(logger, taskRepo, calendarClient, extractUC, cfg.Environment.Timezone)
	digestUC := digestUsecase.New(logger, taskUC, resolver)

	// 8. Telegram surface (optional)
	var telegramHandler tgDelivery.Handler
	var digestJob *digestCron.Job

	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, extractUC, taskUC, digestUC, bot, resolver)

		// Register webhook: auto-detect ngrok or fallback to manual config
		webhookURL := cfg.Telegram.WebhookURL
		if webhookURL == "" {
			ngrokURL, ngrokErr := detectNgrokURL(ctx, "http://ngrok:4040")
			if ngrokErr != nil {
				logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
			} else {
				webhookURL = ngrokURL + "/webhook/telegram"
				logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
			}
		}
		if webhookURL != "" {
			if whErr := bot.SetWebhook(webhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
			}
		}

		// Daily digest delivery
		if cfg.Digest.Enabled {
			digestJob = digestCron.New(logger, digestUC, taskUC, taskRepo, bot, resolver.Location())
			if schedErr := digestJob.ScheduleDaily(cfg.Digest.DailyTime); schedErr != nil {
				logger.Errorf(ctx, "Failed to schedule daily digest: %v", schedErr)
			} else {
				logger.Infof(ctx, "Daily digest scheduled at %s", cfg.Digest.DailyTime)
			}
		}
	} else {
		logger.Warn(ctx, "TELEGRAM_BOT_TOKEN missing, Telegram surface disabled")
	}

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ExtractHandler:  extractHTTP.New(logger, extractUC),
		TaskHandler:     taskHTTP.New(logger, taskUC, digestUC),
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	if digestJob != nil {
		digestJob.Stop()
	}

	logger.Info(ctx, "Server stopped gracefully")
}
