package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"taskplanner/config"
	_ "taskplanner/docs" // Swagger docs
	"taskplanner/internal/httpserver"
	"taskplanner/internal/middleware"
	"taskplanner/internal/schedule"
	scheduleHTTP "taskplanner/internal/schedule/delivery/http"
	scheduleUC "taskplanner/internal/schedule/usecase"
	memosRepo "taskplanner/internal/task/repository/memos"
	"taskplanner/internal/webhook"
	"taskplanner/pkg/gcalendar"
	"taskplanner/pkg/log"
)

// @title       Task Planner API
// @description Deterministic task scheduler over a Memos task store with Google Calendar publishing.
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

	logger.Info(ctx, "Starting Task Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Memos URL: %s", cfg.Memos.URL)

	// 3. Scheduler settings fail fast on malformed config.
	settings, err := schedule.ParseSettings(cfg.Scheduler)
	if err != nil {
		logger.Error(ctx, "Invalid scheduler config: ", err)
		return
	}

	// 4. Task repository (Memos)
	if cfg.Memos.AccessToken == "" {
		logger.Error(ctx, "MEMOS_ACCESS_TOKEN is required")
		return
	}
	memosClient := memosRepo.NewClient(cfg.Memos.URL, cfg.Memos.AccessToken)
	taskRepo := memosRepo.New(
		memosClient,
		cfg.Memos.ExternalURL,
		cfg.Memos.TaskTag,
		cfg.Scheduler.DefaultPriority,
		cfg.Scheduler.DefaultTimeEstimate,
		logger,
	)

	// 5. Google Calendar publisher (optional)
	var publisher schedule.EventPublisher
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
		} else {
			publisher = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. Schedule domain
	uc := scheduleUC.New(logger, taskRepo, publisher, cfg.GoogleCalendar.CalendarID, settings)
	scheduleHandler := scheduleHTTP.New(logger, uc)
	mw := middleware.New(logger, cfg)

	// 7. Task-store webhook (optional)
	var webhookHandler *webhook.Handler
	if cfg.Webhook.Enabled {
		webhookHandler = webhook.NewHandler(uc, webhook.SecurityConfig{
			Secret:          cfg.Webhook.Secret,
			AllowedIPs:      cfg.Webhook.AllowedIPs,
			RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
		}, cfg.Scheduler.DisplayHorizonDays, logger)
	}

	// 8. HTTP Server
	srvCfg := httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ScheduleHandler: scheduleHandler,
		Middleware:      mw,
	}
	if webhookHandler != nil {
		srvCfg.WebhookHandler = webhookHandler
	}

	httpServer, err := httpserver.New(logger, srvCfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Start(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
