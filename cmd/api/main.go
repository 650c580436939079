package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ownly-protocol/config"
	httpHandler "ownly-protocol/internal/adapter/http/handler"
	"ownly-protocol/internal/adapter/ledger"
	pgStorage "ownly-protocol/internal/adapter/storage/postgres"
	redisStorage "ownly-protocol/internal/adapter/storage/redis"
	"ownly-protocol/internal/core/ports"
	"ownly-protocol/internal/service"
	"ownly-protocol/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Ownly Protocol service")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	recordRepo := pgStorage.NewTokenRecordRepo(pool)
	intentRepo := pgStorage.NewPendingIntentRepo(pool)

	// Initialize Redis stores
	balanceCache := redisStorage.NewBalanceCache(rdb)
	opGuard := redisStorage.NewOpGuard(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize ledger client and intent builder
	ledgerClient := ledger.NewClient(cfg.Ledger, &http.Client{Timeout: cfg.Ledger.Timeout}, log)
	intentBuilder := ledger.NewBuilder(cfg.Ledger.PackageID, cfg.Ledger.GasBudget)

	// Verify the escrow contract is reachable before serving traffic.
	if cfg.Ledger.PackageID != "" {
		if err := ledgerClient.VerifyPackage(ctx); err != nil {
			log.Fatal().Err(err).Str("package_id", cfg.Ledger.PackageID).Msg("Escrow contract verification failed")
		}
		log.Info().Str("package_id", cfg.Ledger.PackageID).Msg("Escrow contract verified")
	} else {
		log.Warn().Msg("No contract package configured, lifecycle submissions will fail")
	}

	// Initialize core services
	cipherSvc := service.NewPayloadCipherService(cfg.Cipher.Salt, cfg.Cipher.Iterations)
	walletSvc := service.NewMnemonicWalletService()
	sessionSvc := service.NewJWTSessionService(cfg.Session.Secret, cfg.Session.Expiry, cfg.Session.Issuer)

	// Initialize business services
	lifecycleSvc := service.NewLifecycleService(
		recordRepo,
		intentRepo,
		ledgerClient,
		intentBuilder,
		cipherSvc,
		opGuard,
		log,
	)
	balanceSvc := service.NewBalanceService(ledgerClient, balanceCache, log)

	// Resolve intents a previous run left in flight.
	if err := lifecycleSvc.ReconcilePending(ctx); err != nil {
		log.Error().Err(err).Msg("Pending intent reconciliation failed")
	}

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WalletSvc:      walletSvc,
		SessionSvc:     sessionSvc,
		LifecycleSvc:   lifecycleSvc,
		BalanceSvc:     balanceSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth, ledgerClient},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
