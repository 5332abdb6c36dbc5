package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/dafibh/budgetly/budgetly-backend/docs"
	"github.com/dafibh/budgetly/budgetly-backend/internal/config"
	"github.com/dafibh/budgetly/budgetly-backend/internal/domain"
	"github.com/dafibh/budgetly/budgetly-backend/internal/handler"
	"github.com/dafibh/budgetly/budgetly-backend/internal/middleware"
	"github.com/dafibh/budgetly/budgetly-backend/internal/repository/memory"
	"github.com/dafibh/budgetly/budgetly-backend/internal/service"
	"github.com/dafibh/budgetly/budgetly-backend/internal/websocket"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// @title Budgetly API
// @version 1.0
// @description Monthly budgets, expense tracking and budget alerts.
// @BasePath /api/v1
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = newLogger(cfg, os.Stderr)

	srv := newServer(cfg)
	defer srv.Close()

	// Start server
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("Starting server")
		if err := srv.echo.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.echo.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// newLogger writes JSON in production and human-readable lines elsewhere
func newLogger(cfg *config.Config, out io.Writer) zerolog.Logger {
	if cfg.IsProduction() {
		return zerolog.New(out).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: out}).With().Timestamp().Logger()
}

type server struct {
	echo        *echo.Echo
	hub         *websocket.Hub
	rateLimiter *middleware.RateLimiter
}

// Close releases the background resources held by the server
func (s *server) Close() {
	s.rateLimiter.Stop()
	s.hub.CloseAll()
}

func newServer(cfg *config.Config) *server {
	// Initialize repositories
	var (
		categories   []domain.Category
		transactions []domain.Transaction
		budgets      []domain.Budget
	)
	if cfg.SeedDemoData {
		categories = memory.DemoCategories()
		transactions = memory.DemoTransactions()
		budgets = memory.DemoBudgets()
		log.Info().
			Int("categories", len(categories)).
			Int("transactions", len(transactions)).
			Int("budgets", len(budgets)).
			Msg("Seeded demo data")
	}
	categoryRepo := memory.NewCategoryRepository(categories...)
	transactionRepo := memory.NewTransactionRepository(transactions...)
	budgetRepo := memory.NewBudgetRepository(budgets...)

	hub := websocket.NewHub()

	// Initialize services
	var alertService *service.AlertService
	if cfg.AlertsEnabled {
		alertService = service.NewAlertService(budgetRepo, transactionRepo, categoryRepo)
		alertService.SetEventPublisher(hub)
		alertService.Prime()
	}

	categoryService := service.NewCategoryService(categoryRepo)
	transactionService := service.NewTransactionService(transactionRepo, alertService)
	budgetService := service.NewBudgetService(budgetRepo, categoryRepo, transactionRepo, alertService)
	dashboardService := service.NewDashboardService(categoryRepo, transactionService, budgetService)

	categoryService.SetEventPublisher(hub)
	transactionService.SetEventPublisher(hub)
	budgetService.SetEventPublisher(hub)

	// Initialize handlers
	handlers := handler.Handlers{
		Category:    handler.NewCategoryHandler(categoryService),
		Transaction: handler.NewTransactionHandler(transactionService),
		Budget:      handler.NewBudgetHandler(budgetService),
		Dashboard:   handler.NewDashboardHandler(dashboardService),
	}
	wsHandler := handler.NewWebSocketHandler(hub, cfg.CORSOrigins)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(echomiddleware.RequestID())

	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		MaxAge:       86400,
	}))

	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		HSTSMaxAge:         31536000,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))

	e.Use(middleware.RequestLogger())

	e.Use(echomiddleware.Recover())

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	e.GET("/ws", wsHandler.HandleWS)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	rateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimitPerMinute, cfg.RateLimitBurst)
	handler.RegisterRoutes(e, handlers, middleware.RateLimitMiddleware(rateLimiter))

	return &server{echo: e, hub: hub, rateLimiter: rateLimiter}
}
