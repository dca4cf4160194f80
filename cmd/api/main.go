package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github-workflow-automation/config"
	_ "github-workflow-automation/docs" // Swagger docs
	"github-workflow-automation/internal/automation"
	"github-workflow-automation/internal/httpserver"
	"github-workflow-automation/internal/notify"
	"github-workflow-automation/internal/reviewer"
	"github-workflow-automation/internal/summarizer"
	"github-workflow-automation/internal/webhook"
	"github-workflow-automation/pkg/github"
	"github-workflow-automation/pkg/llmprovider"
	"github-workflow-automation/pkg/log"
	"github-workflow-automation/pkg/slack"
	"github-workflow-automation/pkg/telegram"
)

// @title       GitHub Workflow Automation API
// @description Webhook-driven reviewer rotation, labeling, self-assignment and merge announcements.
// @version     1
// @host        localhost:3000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}
	if err := cfg.ValidateServer(); err != nil {
		fmt.Println("Invalid configuration: ", err)
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

	logger.Info(ctx, "Starting GitHub workflow automation...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Repository: %s/%s", cfg.GitHub.Owner, cfg.GitHub.Repo)

	// 3. Repository client
	gh, err := github.New(github.Config{
		Owner:          cfg.GitHub.Owner,
		Repo:           cfg.GitHub.Repo,
		Token:          cfg.GitHub.Token,
		AppID:          cfg.GitHub.AppID,
		InstallationID: cfg.GitHub.InstallationID,
		PrivateKeyPath: cfg.GitHub.PrivateKeyPath,
		BaseURL:        cfg.GitHub.BaseURL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize GitHub client: ", err)
		os.Exit(1)
	}
	if cfg.GitHub.UsesApp() {
		logger.Infof(ctx, "GitHub auth: app %d, installation %d", cfg.GitHub.AppID, cfg.GitHub.InstallationID)
	}

	// 4. Reviewer rotation
	rotator, err := reviewer.New(cfg.Automation.Reviewers)
	if err != nil {
		logger.Error(ctx, "Failed to initialize reviewer rotation: ", err)
		os.Exit(1)
	}
	logger.Infof(ctx, "Reviewer pool: %v", rotator.Pool())

	// 5. Notification sinks
	var sinks []notify.Sink
	if cfg.Slack.WebhookURL != "" {
		slackClient, slackErr := slack.New(slack.Config{WebhookURL: cfg.Slack.WebhookURL})
		if slackErr != nil {
			logger.Warnf(ctx, "Slack notifications disabled: %v", slackErr)
		} else {
			sinks = append(sinks, notify.NewSlackSink(slackClient))
			logger.Info(ctx, "✅ Slack notifications enabled")
		}
	}
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != 0 {
		sinks = append(sinks, notify.NewTelegramSink(telegram.NewBot(cfg.Telegram.BotToken), cfg.Telegram.ChatID))
		logger.Info(ctx, "✅ Telegram notifications enabled")
	}
	if len(sinks) == 0 {
		logger.Warn(ctx, "No notification sink configured, merge announcements will only be logged")
	}

	// 6. AI summaries (optional)
	var sum summarizer.Summarizer
	if len(cfg.LLM.Providers) > 0 {
		providers, llmErr := llmprovider.InitializeProviders(&cfg.LLM, logger)
		if llmErr != nil {
			logger.Warnf(ctx, "AI summaries disabled: %v", llmErr)
		} else {
			manager := llmprovider.NewManager(providers, llmprovider.NewManagerConfig(&cfg.LLM), logger)
			sum = summarizer.New(manager, logger)
			logger.Infof(ctx, "✅ AI summaries enabled with %d provider(s)", len(providers))
		}
	}

	notifier := notify.New(notify.Config{
		Sinks:      sinks,
		Summarizer: sum,
		Timeout:    cfg.Notify.Timeout,
		Logger:     logger,
	})

	// 7. Event handlers
	automationUC := automation.New(gh, rotator, notifier, automation.Config{
		ReviewLabel:   cfg.Automation.ReviewLabel,
		AssignCommand: cfg.Automation.AssignCommand,
	}, logger)

	webhookHandler := webhook.NewHandler(automationUC, webhook.SecurityConfig{
		Secret:          cfg.Webhook.Secret,
		AllowedIPs:      cfg.Webhook.AllowedIPs,
		RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
	}, logger)

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		WebhookPath:    cfg.Webhook.Path,
		WebhookHandler: webhookHandler,
		Drainer:        notifier,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
