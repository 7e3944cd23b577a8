package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	_ "github.com/lib/pq"
	slackapi "github.com/slack-go/slack"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"slack-digest-service/internal/config"
	"slack-digest-service/internal/logger"
	"slack-digest-service/internal/scheduler"
	"slack-digest-service/internal/sentiment"

	eventsHttp "slack-digest-service/internal/events/adapters/http/fiber"
	eventsRepoPg "slack-digest-service/internal/events/adapters/postgres"
	"slack-digest-service/internal/events/core/normalizer"
	eventsUsecase "slack-digest-service/internal/events/core/usecase"

	digestHttp "slack-digest-service/internal/digest/adapters/http/fiber"
	digestRepoPg "slack-digest-service/internal/digest/adapters/postgres"
	digestSlack "slack-digest-service/internal/digest/adapters/slack"
	digestUsecase "slack-digest-service/internal/digest/core/usecase"

	_ "slack-digest-service/docs"
)

// @title Slack Digest Service API
// @version 1.0
// @description Ingests Slack webhook events and posts daily channel activity digests.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.ServiceEnvironment)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	// DB connection
	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		zlog.Fatal("failed to open postgres", zap.Error(err))
	}
	defer db.Close()

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		zlog.Fatal("failed to ping postgres", zap.Error(err))
	}

	loc := cfg.Location()

	// Ingestion side
	eventsDB := eventsRepoPg.NewSQLDB(db)
	eventRepository := eventsRepoPg.NewEventRepository(eventsDB)
	norm := normalizer.New(nil)
	dispatchUC := eventsUsecase.NewDispatchEventUseCase(norm, eventRepository, zlog)

	// Digest side
	digestDB := digestRepoPg.NewSQLDB(db)
	counterRepository := digestRepoPg.NewCounterRepository(digestDB)
	summaryRepository := digestRepoPg.NewSummaryRepository(digestDB)

	slackClient := slackapi.New(cfg.SlackBotToken)
	notifier := digestSlack.NewNotifier(slackClient, zlog)

	collectUC := digestUsecase.NewCollectStatsUseCase(counterRepository, loc)
	runDigestUC := digestUsecase.NewRunDigestUseCase(
		collectUC, summaryRepository, notifier, cfg.StatsChannelID, loc, zlog, nil)

	// Scheduler
	sched, err := scheduler.New(cfg.DigestSchedule, loc, runDigestUC, zlog)
	if err != nil {
		zlog.Fatal("invalid digest schedule", zap.String("schedule", cfg.DigestSchedule), zap.Error(err))
	}
	sched.Start()

	// HTTP (Fiber) app + handlers
	app := fiber.New()

	webhookHandler := eventsHttp.NewWebhookHandler(dispatchUC, zlog)
	app.Post("/slack/events",
		eventsHttp.NewSignatureMiddleware(cfg.SlackSigningSecret, zlog),
		webhookHandler.HandleEvent)

	digestHandler := digestHttp.NewDigestHandler(runDigestUC, zlog)
	app.Post("/digest/run", digestHandler.RunDigest)

	sentimentHandler := sentiment.NewHandler(sentiment.NewAnalyzer())
	app.Post("/sentiment", sentimentHandler.Analyze)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.ServicePort); err != nil {
			zlog.Error("fiber stopped", zap.Error(err))
		}
	}()

	zlog.Info("server started",
		zap.String("port", cfg.ServicePort),
		zap.String("timezone", cfg.Timezone),
		zap.String("schedule", cfg.DigestSchedule))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	zlog.Info("shutting down...")

	// Let any in-flight digest run finish before closing the DB.
	<-sched.Stop().Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		zlog.Error("fiber shutdown error", zap.Error(err))
	}

	zlog.Info("server exiting")
}
