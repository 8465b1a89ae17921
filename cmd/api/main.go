package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"voice-assistant/config"
	_ "voice-assistant/docs" // Swagger docs
	"voice-assistant/internal/app"
	assistantHTTP "voice-assistant/internal/assistant/delivery/http"
	tgDelivery "voice-assistant/internal/assistant/delivery/telegram"
	"voice-assistant/internal/httpserver"
	"voice-assistant/pkg/log"
	"voice-assistant/pkg/telegram"
)

// @title       Voice Assistant API
// @description Text turns, conversation log, display events and the Telegram webhook of the voice assistant.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	configPath := pflag.StringP("config", "c", "", "path to config.yaml")
	pflag.Parse()

	// 1. Configuration
	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
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

	logger.Info(ctx, "Starting Voice Assistant API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Assistant. Remote channels cannot end the process, so there is no terminator.
	assistantApp, err := app.New(ctx, cfg, logger, app.Options{})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize assistant: %v", err)
		return
	}
	defer assistantApp.Close()

	// 4. Telegram (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken, telegram.WithHTTPClient(assistantApp.HTTPClient))
		telegramHandler = tgDelivery.New(logger, assistantApp.Assistant, bot, assistantApp.Middleware, tgDelivery.Options{
			AllowedChats: cfg.Telegram.AllowedChats,
			Timeout:      cfg.Telegram.Timeout,
		})
		if len(cfg.Telegram.AllowedChats) == 0 {
			logger.Warn(ctx, "telegram.allowed_chats is empty: any chat can talk to the bot, but only conversationally")
		}
		go registerWebhook(ctx, logger, bot, cfg.Telegram)
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		Middleware:       assistantApp.Middleware,
		AssistantHandler: assistantHTTP.New(logger, assistantApp.Assistant, assistantHTTP.Options{Trusted: cfg.HTTPServer.Trusted}),
		TelegramHandler:  telegramHandler,
		Events:           assistantApp.Hub,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// registerWebhook points Telegram at this server: the configured URL first, then ngrok.
func registerWebhook(ctx context.Context, logger log.Logger, bot telegram.IBot, cfg config.TelegramConfig) {
	webhookURL := cfg.WebhookURL
	if webhookURL == "" {
		ngrokURL, err := detectNgrokURL(ctx, cfg.NgrokAPI, ngrokAttempts, 3*time.Second)
		if err != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
			return
		}
		webhookURL = ngrokURL + "/webhook/telegram"
		logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
	}

	if err := bot.SetWebhook(ctx, webhookURL); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	logger.Infof(ctx, "✅ Telegram webhook registered at %s", webhookURL)
}
