package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/amerbank/ledger/internal/adapter/http"
	"github.com/amerbank/ledger/internal/adapter/http/handler"
	"github.com/amerbank/ledger/internal/adapter/http/middleware"
	postgresRepo "github.com/amerbank/ledger/internal/adapter/repository/postgres"
	redisRepo "github.com/amerbank/ledger/internal/adapter/repository/redis"
	"github.com/amerbank/ledger/internal/infrastructure/config"
	"github.com/amerbank/ledger/internal/infrastructure/logger"
	"github.com/amerbank/ledger/internal/infrastructure/metrics"
	"github.com/amerbank/ledger/internal/infrastructure/postgres"
	"github.com/amerbank/ledger/internal/infrastructure/redis"
	"github.com/amerbank/ledger/internal/usecase"

	redislib "github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = appLogger
	zerolog.DefaultContextLogger = &appLogger

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, postgres.PoolConfig{
		DatabaseURL: cfg.DatabaseURL,
		MaxConns:    cfg.DatabaseMaxConns,
		MinConns:    cfg.DatabaseMinConns,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Apply migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis when configured; the service runs without the cache
	// otherwise.
	var redisClient *redislib.Client
	var cache usecase.Cache
	if cfg.RedisURL != "" {
		redisClient, err = redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		cache = redisRepo.NewCache(redisClient)
		log.Info().Msg("connected to redis")
	}

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	bankRepo := postgresRepo.NewBankRepository(pool)
	retrier := postgresRepo.NewRetrier()

	appMetrics := metrics.New()

	// Seed demo data when requested
	if cfg.SeedDemoData {
		if err := postgresRepo.NewSeeder(pool).Seed(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to seed demo data")
		}
	}

	// Initialize use cases
	accountUC := usecase.NewAccountUseCase(accountRepo, cache, cfg.CacheTTL, appMetrics)
	bankUC := usecase.NewBankUseCase(bankRepo, cache, cfg.CacheTTL)
	transferUC := usecase.NewTransferUseCase(txManager, accountRepo, bankRepo, retrier, cache, appMetrics)

	// Initialize handlers
	accountHandler := handler.NewAccountHandler(accountUC)
	bankHandler := handler.NewBankHandler(bankUC)
	transferHandler := handler.NewTransferHandler(transferUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AccountHandler:  accountHandler,
		TransferHandler: transferHandler,
		BankHandler:     bankHandler,
		HealthHandler:   healthHandler,
		Logger:          &appLogger,
		RateLimiter:     middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst),
		ExposeMetrics:   true,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
