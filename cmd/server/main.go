package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	appservice "github.com/healthpredict/healthpredict/internal/application/service"
	"github.com/healthpredict/healthpredict/internal/config"
	domainservice "github.com/healthpredict/healthpredict/internal/domain/service"
	"github.com/healthpredict/healthpredict/internal/infrastructure/artifacts"
	"github.com/healthpredict/healthpredict/internal/infrastructure/audit"
	"github.com/healthpredict/healthpredict/internal/infrastructure/chatstore"
	"github.com/healthpredict/healthpredict/internal/infrastructure/monitoring"
	"github.com/healthpredict/healthpredict/internal/infrastructure/narrative"
	"github.com/healthpredict/healthpredict/internal/infrastructure/persistence/sqlstore"
	httpiface "github.com/healthpredict/healthpredict/internal/interfaces/http"
	"github.com/healthpredict/healthpredict/internal/interfaces/http/handlers"
	"github.com/healthpredict/healthpredict/pkg/constants"
	"github.com/healthpredict/healthpredict/pkg/logger"
)

func main() {
	startupLogger, err := monitoring.NewZapLogger(&config.LogConfig{Level: "info", Format: "console"})
	if err != nil {
		log.Fatalf("failed to create startup logger: %v", err)
	}

	cfg, err := config.LoadConfig(startupLogger)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	appLogger, err := monitoring.NewZapLogger(&cfg.Log)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}

	ctx := context.Background()

	tracing, err := monitoring.NewTracingManager(cfg, appLogger)
	if err != nil {
		appLogger.Fatal(ctx, "failed to initialize tracing", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.DefaultShutdownTimeout)
		defer cancel()
		if err := tracing.Shutdown(shutdownCtx); err != nil {
			appLogger.Warn(shutdownCtx, "tracing shutdown failed")
		}
	}()

	metrics := monitoring.NewMetrics()

	db, err := sqlstore.NewDBConnection(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal(ctx, "failed to connect to database", err)
	}
	defer db.Close()

	userRepo := sqlstore.NewUserRepository(db.DB(), appLogger)
	predictionRepo := sqlstore.NewPredictionRepository(db.DB(), appLogger)

	artifactProvider := artifacts.NewFileProvider(&cfg.Artifacts, appLogger)

	var narrativeClient domainservice.NarrativeClient
	if cfg.Narrative.Enabled {
		narrativeClient = narrative.NewOpenRouterClient(&cfg.Narrative, appLogger)
	} else {
		narrativeClient = narrative.NewDisabledClient()
	}

	var sessions domainservice.ChatStore
	if cfg.Redis.Enabled {
		sessions, err = chatstore.NewRedisStore(ctx, &cfg.Redis, appLogger)
		if err != nil {
			appLogger.Fatal(ctx, "failed to connect to redis", err)
		}
	} else {
		sessions = chatstore.NewMemoryStore(cfg.Redis.SessionTTLDuration())
	}

	var auditService domainservice.AuditService
	if cfg.Kafka.Enabled {
		auditService = audit.NewKafkaProducer(&cfg.Kafka, appLogger)
	} else {
		auditService = audit.NewNoopProducer()
	}
	defer func() {
		if err := auditService.Close(); err != nil {
			appLogger.Warn(ctx, "audit producer close failed")
		}
	}()

	scorer := domainservice.NewRiskScorer(artifactProvider, appLogger)
	wellness := domainservice.NewWellnessService(predictionRepo, appLogger)

	recorder := appservice.NewPredictionRecorder(userRepo, predictionRepo, auditService, metrics, appLogger)
	authService := appservice.NewAuthAppService(userRepo, &cfg.JWT, appLogger)
	assessmentService := appservice.NewAssessmentAppService(scorer, recorder, narrativeClient, metrics, appLogger)
	chatService := appservice.NewChatAppService(narrativeClient, sessions, recorder, metrics, appLogger)
	historyService := appservice.NewHistoryAppService(wellness, appLogger)
	adminService := appservice.NewAdminAppService(userRepo, predictionRepo, appLogger)

	router := httpiface.NewRouter(
		cfg,
		appLogger,
		authService,
		metrics,
		tracing,
		handlers.NewHealthHandler(db),
		handlers.NewAuthHandler(authService),
		handlers.NewAssessmentHandler(assessmentService),
		handlers.NewChatHandler(chatService),
		handlers.NewHistoryHandler(historyService),
		handlers.NewAdminHandler(adminService),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- router.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			appLogger.Fatal(ctx, "HTTP server failed", err)
		}
	case sig := <-quit:
		appLogger.Info(ctx, "shutdown signal received", logger.Fields{"signal": sig.String()})
		shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.DefaultShutdownTimeout)
		defer cancel()
		if err := router.Stop(shutdownCtx); err != nil {
			appLogger.Error(shutdownCtx, "graceful shutdown failed", err)
		}
	}
}
