package main

// @title Transport Admin API
// @version 1.0.0
// @description Сервис административной панели данных общественного транспорта. Предоставляет API для ведения маршрутов, остановок и справочников, ленту уведомлений о вводе данных, учёт присутствия операторов и сводные метрики панели.

// @contact.name API Support
// @contact.email support@transport-admin.local

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/transport-admin/docs/swagger"
	"github.com/transport-admin/internal/config"
	httpDelivery "github.com/transport-admin/internal/delivery/http"
	"github.com/transport-admin/internal/delivery/http/handler"
	"github.com/transport-admin/internal/pkg/logger"
	"github.com/transport-admin/internal/repository/cache"
	"github.com/transport-admin/internal/repository/postgres"
	redisRepo "github.com/transport-admin/internal/repository/redis"
	"github.com/transport-admin/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Transport Admin API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories
	routeRepo := postgres.NewRouteRepository(db)
	stopRepo := postgres.NewStopRepository(db)
	staffRepo := postgres.NewStaffRepository(db)
	dictRepo := postgres.NewDictionaryRepository(db)
	notifRepo := postgres.NewNotificationRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	presenceRepo := redisRepo.NewPresenceRepository(redisClient.Client(), log)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), cfg.Worker.StreamReadTimeout, log)

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	authUC := usecase.NewAuthUseCase(
		staffRepo,
		presenceRepo,
		cfg.Auth.JWTSecret,
		cfg.Auth.TokenTTL,
		cfg.Presence.MarkerTTL,
		log,
	)
	routeUC := usecase.NewRouteUseCase(routeRepo, streamRepo, log)
	stopUC := usecase.NewStopUseCase(stopRepo, streamRepo, log)
	dictUC := usecase.NewDictionaryUseCase(dictRepo, log)
	staffUC := usecase.NewStaffUseCase(staffRepo, log)
	notifUC := usecase.NewNotificationUseCase(notifRepo, log)
	presenceUC := usecase.NewPresenceUseCase(presenceRepo, cfg.Presence.MarkerTTL, log)
	statsUC := usecase.NewStatsUseCase(
		routeRepo,
		stopRepo,
		dictRepo,
		presenceRepo,
		cacheRepo,
		cfg.Cache.StatsCacheTTL,
		log,
	)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(authUC, log)
	routeHandler := handler.NewRouteHandler(routeUC, log)
	stopHandler := handler.NewStopHandler(stopUC, log)
	dictionaryHandler := handler.NewDictionaryHandler(dictUC, log)
	staffHandler := handler.NewStaffHandler(staffUC, log)
	presenceHandler := handler.NewPresenceHandler(presenceUC, log)
	notificationHandler := handler.NewNotificationHandler(notifUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		authUC,
		cacheRepo,
		authHandler,
		routeHandler,
		stopHandler,
		dictionaryHandler,
		staffHandler,
		presenceHandler,
		notificationHandler,
		statsHandler,
	)

	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
