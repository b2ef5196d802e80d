package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Galalike/fixed-cost-pro/internal/config"
	"github.com/Galalike/fixed-cost-pro/internal/domain"
	"github.com/Galalike/fixed-cost-pro/internal/handler"
	"github.com/Galalike/fixed-cost-pro/internal/middleware"
	"github.com/Galalike/fixed-cost-pro/internal/repository/jsonfile"
	"github.com/Galalike/fixed-cost-pro/internal/repository/memory"
	"github.com/Galalike/fixed-cost-pro/internal/repository/sqlitestore"
	"github.com/Galalike/fixed-cost-pro/internal/service"
	"github.com/Galalike/fixed-cost-pro/internal/websocket"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Open the state store
	repo, cleanup := openStore(cfg)
	defer cleanup()

	// Initialize services
	stateService := service.NewStateService(repo)
	stateService.Bootstrap()
	catalogService := service.NewCatalogService(stateService)
	ledgerService := service.NewLedgerService(stateService)
	monthService := service.NewMonthService(stateService, cfg.PersistViewMonth)
	viewService := service.NewViewService(stateService)
	backupService := service.NewBackupService(stateService)

	// Initialize WebSocket hub and wire event publishing
	hub := websocket.NewHub()
	stateService.SetEventPublisher(hub)

	// Initialize handlers
	costHandler := handler.NewCostHandler(catalogService, ledgerService)
	viewHandler := handler.NewViewHandler(viewService)
	monthHandler := handler.NewMonthHandler(monthService)
	backupHandler := handler.NewBackupHandler(backupService, monthService)
	wsHandler := handler.NewWebSocketHandler(hub, cfg.CORSOrigins)

	// Rate limiter keyed by client IP
	rateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimitPerMinute, middleware.DefaultBurstSize)
	defer rateLimiter.Stop()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Request ID middleware
	e.Use(echomiddleware.RequestID())

	// CORS middleware
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Security headers middleware (helmet-like)
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		HSTSMaxAge:            31536000,
		ContentSecurityPolicy: "default-src 'self'",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
	}))

	// Request logging middleware with zerolog
	e.Use(zerologMiddleware())

	// Recovery middleware
	e.Use(echomiddleware.Recover())

	// Rate limiting middleware
	e.Use(middleware.RateLimitMiddleware(rateLimiter))

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// WebSocket endpoint
	e.GET("/ws", wsHandler.HandleWS)

	// Register API routes
	handler.RegisterRoutes(e, costHandler, viewHandler, monthHandler, backupHandler)

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Str("driver", cfg.StorageDriver).Msg("Starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// openStore builds the configured state repository. A SQLite open failure
// falls back to the in-memory store so the app still serves, with a warning
// that nothing will survive a restart.
func openStore(cfg *config.Config) (domain.StateRepository, func()) {
	switch cfg.StorageDriver {
	case config.DriverSQLite:
		store, err := sqlitestore.New(cfg.DataFile)
		if err != nil {
			log.Error().Err(err).Str("path", cfg.DataFile).
				Msg("Failed to open SQLite store, falling back to in-memory storage")
			return memory.New(), func() {}
		}
		return store, func() {
			if err := store.Close(); err != nil {
				log.Error().Err(err).Msg("Failed to close SQLite store")
			}
		}
	case config.DriverMemory:
		return memory.New(), func() {}
	default:
		return jsonfile.New(cfg.DataFile), func() {}
	}
}

// zerologMiddleware returns a middleware that logs requests using zerolog
func zerologMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			log.Info().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Dur("latency", time.Since(start)).
				Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
				Msg("request")

			return nil
		}
	}
}
