package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/clinilab/clinilab/internal/adapter/http"
	"github.com/clinilab/clinilab/internal/adapter/http/handler"
	"github.com/clinilab/clinilab/internal/adapter/http/middleware"
	postgresRepo "github.com/clinilab/clinilab/internal/adapter/repository/postgres"
	redisRepo "github.com/clinilab/clinilab/internal/adapter/repository/redis"
	"github.com/clinilab/clinilab/internal/infrastructure/config"
	"github.com/clinilab/clinilab/internal/infrastructure/logger"
	"github.com/clinilab/clinilab/internal/infrastructure/metrics"
	"github.com/clinilab/clinilab/internal/infrastructure/postgres"
	"github.com/clinilab/clinilab/internal/infrastructure/redis"
	"github.com/clinilab/clinilab/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = appLogger

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, "migrations"); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Metrics
	appMetrics := metrics.New()

	// Initialize repositories
	receiptRepo := postgresRepo.NewReceiptRepository(pool)
	expenseRepo := postgresRepo.NewExpenseRepository(pool)
	operationRepo := postgresRepo.NewOperationRepository(pool)
	cashCutRepo := postgresRepo.NewCashCutRepository(pool)
	catalogRepo := postgresRepo.NewCatalogRepository(pool)
	txManager := postgresRepo.NewTxManager(pool)
	retrier := postgresRepo.NewRetrier()
	idGen := postgresRepo.NewULIDGenerator()
	cache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)

	// Initialize use cases
	receiptUC := usecase.NewReceiptUseCase(txManager, receiptRepo, idGen, appMetrics)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo, idGen, appMetrics)
	operationUC := usecase.NewOperationUseCase(operationRepo, idGen, appMetrics)
	cashCutUC := usecase.NewCashCutUseCase(receiptRepo, expenseRepo, operationRepo, cashCutRepo, idGen, appMetrics, cfg.CashCutUserID)
	dashboardUC := usecase.NewDashboardUseCase(catalogRepo, receiptRepo, expenseRepo, cache, retrier, cfg.DashboardCacheTTL, cfg.ExtraExpenseCategoryID)
	catalogUC := usecase.NewCatalogUseCase(catalogRepo)

	// Initialize handlers
	dashboardHandler := handler.NewDashboardHandler(dashboardUC, appLogger, appMetrics)
	receiptHandler := handler.NewReceiptHandler(receiptUC)
	expenseHandler := handler.NewExpenseHandler(expenseUC)
	operationHandler := handler.NewOperationHandler(operationUC)
	cashCutHandler := handler.NewCashCutHandler(cashCutUC)
	catalogHandler := handler.NewCatalogHandler(catalogUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			rateLimiter.CleanupLimiters()
		}
	}()
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		DashboardHandler: dashboardHandler,
		ReceiptHandler:   receiptHandler,
		ExpenseHandler:   expenseHandler,
		OperationHandler: operationHandler,
		CashCutHandler:   cashCutHandler,
		CatalogHandler:   catalogHandler,
		HealthHandler:    healthHandler,
		IdempotencyStore: idempotencyStore,
		IdempotencyTTL:   cfg.IdempotencyTTL,
		RateLimiter:      rateLimiter,
		Logger:           appLogger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
