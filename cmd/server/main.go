package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/shopledger/internal/adapter/http"
	"github.com/iho/shopledger/internal/adapter/http/handler"
	postgresRepo "github.com/iho/shopledger/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/shopledger/internal/adapter/repository/redis"
	"github.com/iho/shopledger/internal/infrastructure/config"
	"github.com/iho/shopledger/internal/infrastructure/logger"
	"github.com/iho/shopledger/internal/infrastructure/metrics"
	"github.com/iho/shopledger/internal/infrastructure/postgres"
	redisInfra "github.com/iho/shopledger/internal/infrastructure/redis"
	"github.com/iho/shopledger/internal/usecase"

	goredis "github.com/redis/go-redis/v9"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	log.Logger = appLogger

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	appLogger.Info().Msg("connected to postgres")

	// Run migrations when a path is configured
	if cfg.MigrationsPath != "" {
		if err := postgres.RunMigrations(appLogger, cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			appLogger.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	// Connect to Redis when configured
	var redisClient *goredis.Client
	var summaryCache usecase.SummaryCache
	if cfg.RedisURL != "" {
		redisClient, err = redisInfra.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			appLogger.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		summaryCache = redisRepo.NewSummaryCache(redisClient)
		appLogger.Info().Msg("connected to redis")
	}

	// Initialize repositories
	retrier := postgresRepo.NewRetrier(appLogger)
	store := postgresRepo.NewStore(pool, retrier)
	idGen := postgresRepo.NewULIDGenerator()
	m := metrics.New()

	// Initialize use cases
	partyUC := usecase.NewPartyUseCase(store, store, idGen, m)
	statementUC := usecase.NewStatementUseCase(store, m)
	outstandingUC := usecase.NewOutstandingUseCase(store, summaryCache, usecase.OutstandingConfig{
		Workers:      cfg.SummaryWorkers,
		FetchTimeout: cfg.SummaryFetchTimeout,
		CacheTTL:     cfg.SummaryCacheTTL,
	}, appLogger, m)

	// Initialize handlers
	partyHandler := handler.NewPartyHandler(partyUC)
	statementHandler := handler.NewStatementHandler(statementUC)
	outstandingHandler := handler.NewOutstandingHandler(outstandingUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		PartyHandler:       partyHandler,
		StatementHandler:   statementHandler,
		OutstandingHandler: outstandingHandler,
		HealthHandler:      healthHandler,
		Logger:             appLogger,
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
		appLogger.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	appLogger.Info().Msg("server stopped")
}
