package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	httptransport "github.com/campushub/studenthub/internal/api/http"
	"github.com/campushub/studenthub/internal/api/http/handlers"
	"github.com/campushub/studenthub/internal/auth"
	"github.com/campushub/studenthub/internal/config"
	"github.com/campushub/studenthub/internal/events"
	"github.com/campushub/studenthub/internal/kv"
	"github.com/campushub/studenthub/internal/observability"
	"github.com/campushub/studenthub/internal/persistence"
	"github.com/campushub/studenthub/internal/repository"
	"github.com/campushub/studenthub/internal/service"
	"github.com/campushub/studenthub/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registry)

	store := kv.NewRedisStore(redis.Client)
	accountRepo := repository.NewAccountRepository(pg.PoolHandle())

	profileService := service.NewProfileService(store)
	authService := service.NewAuthService(cfg.Auth, accountRepo, profileService)
	dispatcher := events.NewInMemoryDispatcher()
	feedbackService := service.NewFeedbackService(store, dispatcher)
	notificationService := service.NewNotificationService(store, profileService)
	catalogService := service.NewCatalogService(store)

	notificationWorker := worker.NewNotificationWorker(notificationService, logger)
	notificationWorker.Register(dispatcher)

	if cfg.Reconcile.Enabled {
		reconciler := worker.NewReconcileWorker(feedbackService, cfg.Reconcile.Interval(), logger)
		go reconciler.Run(ctx)
	}

	verifier := auth.NewTokenVerifier(authService.TokenManager(), accountRepo)
	authMiddleware := auth.NewMiddleware(verifier)

	app := fiber.New(fiber.Config{DisableStartupMessage: cfg.App.Env == "production"})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService, profileService),
		Feedback:       handlers.NewFeedbackHandler(feedbackService),
		Notifications:  handlers.NewNotificationsHandler(notificationService),
		Catalog:        handlers.NewCatalogHandler(catalogService),
		AuthMiddleware: authMiddleware,
		Registry:       registry,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
