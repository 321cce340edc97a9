package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"github.com/transport-admin/internal/config"
	"github.com/transport-admin/internal/delivery/http/handler"
	"github.com/transport-admin/internal/delivery/http/middleware"
	"github.com/transport-admin/internal/domain/repository"
	"github.com/transport-admin/internal/usecase"
	"go.uber.org/zap"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	authUC    *usecase.AuthUseCase
	cacheRepo repository.CacheRepository

	// Handlers
	authHandler         *handler.AuthHandler
	routeHandler        *handler.RouteHandler
	stopHandler         *handler.StopHandler
	dictionaryHandler   *handler.DictionaryHandler
	staffHandler        *handler.StaffHandler
	presenceHandler     *handler.PresenceHandler
	notificationHandler *handler.NotificationHandler
	statsHandler        *handler.StatsHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	authUC *usecase.AuthUseCase,
	cacheRepo repository.CacheRepository,
	authHandler *handler.AuthHandler,
	routeHandler *handler.RouteHandler,
	stopHandler *handler.StopHandler,
	dictionaryHandler *handler.DictionaryHandler,
	staffHandler *handler.StaffHandler,
	presenceHandler *handler.PresenceHandler,
	notificationHandler *handler.NotificationHandler,
	statsHandler *handler.StatsHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Transport Admin API",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:                 app,
		config:              cfg,
		logger:              logger,
		authUC:              authUC,
		cacheRepo:           cacheRepo,
		authHandler:         authHandler,
		routeHandler:        routeHandler,
		stopHandler:         stopHandler,
		dictionaryHandler:   dictionaryHandler,
		staffHandler:        staffHandler,
		presenceHandler:     presenceHandler,
		notificationHandler: notificationHandler,
		statsHandler:        statsHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.Latency(s.cacheRepo, s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Auth
	api.Post("/auth/sign-in", s.authHandler.SignIn)

	// Всё остальное доступно только с токеном
	auth := middleware.Auth(s.authUC)

	// Routes CRUD
	api.Get("/routes", auth, s.routeHandler.List)
	api.Get("/routes/:id", auth, s.routeHandler.Get)
	api.Post("/routes", auth, s.routeHandler.Create)
	api.Put("/routes/:id", auth, s.routeHandler.Update)
	api.Delete("/routes/:id", auth, s.routeHandler.Delete)

	// Stops CRUD
	api.Get("/stops", auth, s.stopHandler.List)
	api.Get("/stops/:id", auth, s.stopHandler.Get)
	api.Post("/stops", auth, s.stopHandler.Create)
	api.Put("/stops/:id", auth, s.stopHandler.Update)
	api.Delete("/stops/:id", auth, s.stopHandler.Delete)

	// Dictionaries
	api.Get("/types", auth, s.dictionaryHandler.ListTypes)
	api.Put("/types", auth, s.dictionaryHandler.SaveType)
	api.Delete("/types/:id", auth, s.dictionaryHandler.DeleteType)
	api.Get("/cities", auth, s.dictionaryHandler.ListCities)
	api.Put("/cities", auth, s.dictionaryHandler.SaveCity)
	api.Delete("/cities/:id", auth, s.dictionaryHandler.DeleteCity)
	api.Get("/sizes", auth, s.dictionaryHandler.ListSizes)
	api.Put("/sizes", auth, s.dictionaryHandler.SaveSize)
	api.Delete("/sizes/:id", auth, s.dictionaryHandler.DeleteSize)

	// Staff
	api.Get("/staff", auth, s.staffHandler.List)
	api.Get("/staff/:id", auth, s.staffHandler.Get)
	api.Post("/staff", auth, s.staffHandler.Create)
	api.Put("/staff/:id", auth, s.staffHandler.Update)
	api.Delete("/staff/:id", auth, s.staffHandler.Delete)

	// Presence
	api.Post("/presence/heartbeat", auth, s.presenceHandler.Heartbeat)
	api.Post("/presence/offline", auth, s.presenceHandler.Offline)
	api.Get("/presence", auth, s.presenceHandler.Current)
	api.Get("/presence/history", auth, s.presenceHandler.History)
	api.Get("/presence/summary", auth, s.presenceHandler.Summary)

	// Notifications
	api.Get("/notifications", auth, s.notificationHandler.List)
	api.Post("/notifications/read-all", auth, s.notificationHandler.MarkAllRead)
	api.Post("/notifications/:id/read", auth, s.notificationHandler.MarkRead)

	// Stats
	api.Get("/stats/dashboard", auth, s.statsHandler.Dashboard)
	api.Get("/stats/latency", auth, s.statsHandler.Latency)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// App возвращает приложение Fiber (для тестов обработчиков)
func (s *Server) App() *fiber.App {
	return s.app
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
