package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/mulisa/vsla-ledger/internal/adapter/http"
	"github.com/mulisa/vsla-ledger/internal/adapter/http/handler"
	"github.com/mulisa/vsla-ledger/internal/adapter/http/middleware"
	postgresRepo "github.com/mulisa/vsla-ledger/internal/adapter/repository/postgres"
	redisRepo "github.com/mulisa/vsla-ledger/internal/adapter/repository/redis"
	"github.com/mulisa/vsla-ledger/internal/infrastructure/config"
	"github.com/mulisa/vsla-ledger/internal/infrastructure/logger"
	"github.com/mulisa/vsla-ledger/internal/infrastructure/metrics"
	"github.com/mulisa/vsla-ledger/internal/infrastructure/postgres"
	"github.com/mulisa/vsla-ledger/internal/infrastructure/redis"
	"github.com/mulisa/vsla-ledger/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = appLogger

	ctx := context.Background()

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Repositories
	txManager := postgresRepo.NewTxManager(pool)
	retrier := postgresRepo.NewRetrier()
	ledgerRepo := postgresRepo.NewLedgerRepository(pool)
	loanRepo := postgresRepo.NewLoanRepository(pool)
	loanTxRepo := postgresRepo.NewLoanTransactionRepository(pool)
	shareRepo := postgresRepo.NewShareRepository(pool)
	socialFundRepo := postgresRepo.NewSocialFundRepository(pool)
	memberRepo := postgresRepo.NewMemberRepository(pool)
	meetingRepo := postgresRepo.NewMeetingRepository(pool)
	cache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	idGen := postgresRepo.NewULIDGenerator()

	// Use cases
	meetingUC := usecase.NewMeetingUseCase(
		txManager, retrier,
		ledgerRepo, loanRepo, loanTxRepo, shareRepo, socialFundRepo,
		memberRepo, meetingRepo, idGen, cache,
	)
	loanUC := usecase.NewLoanUseCase(txManager, retrier, loanRepo, loanTxRepo, ledgerRepo, idGen, cache)
	balanceUC := usecase.NewBalanceUseCase(ledgerRepo, socialFundRepo, cache)
	reconciliationUC := usecase.NewReconciliationUseCase(ledgerRepo)

	// Handlers
	m := metrics.New()
	meetingHandler := handler.NewMeetingHandler(meetingUC, m)
	loanHandler := handler.NewLoanHandler(loanUC, m)
	balanceHandler := handler.NewBalanceHandler(balanceUC)
	ledgerHandler := handler.NewLedgerHandler(reconciliationUC, m)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimitRPS > 0 {
		rateLimiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		MeetingHandler:   meetingHandler,
		LoanHandler:      loanHandler,
		BalanceHandler:   balanceHandler,
		LedgerHandler:    ledgerHandler,
		HealthHandler:    healthHandler,
		IdempotencyStore: idempotencyStore,
		RateLimiter:      rateLimiter,
		Logger:           appLogger,
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
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
