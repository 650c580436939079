package handler

import (
	"ownly-protocol/internal/adapter/http/middleware"
	redisStore "ownly-protocol/internal/adapter/storage/redis"
	"ownly-protocol/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WalletSvc      ports.WalletService
	SessionSvc     ports.SessionService
	LifecycleSvc   ports.LifecycleService
	BalanceSvc     ports.BalanceService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis + ledger)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no session) ---
	walletHandler := NewWalletHandler(deps.WalletSvc, deps.SessionSvc)
	wallet := v1.Group("/wallet")
	{
		wallet.POST("", rl("wallet_create"), walletHandler.Create)
		wallet.POST("/import", rl("wallet_create"), walletHandler.Import)
	}
	v1.POST("/session", rl("session"), walletHandler.Connect)

	// --- Session-authenticated routes ---
	sessionAuth := middleware.SessionAuth(deps.SessionSvc, deps.Logger)
	lifecycleHandler := NewLifecycleHandler(deps.LifecycleSvc, deps.WalletSvc)
	balanceHandler := NewBalanceHandler(deps.BalanceSvc)

	tokens := v1.Group("/tokens", sessionAuth)
	{
		tokens.GET("", rl("history"), lifecycleHandler.History)
		tokens.POST("/lock", rl("lifecycle"), lifecycleHandler.Lock)
		tokens.POST("/:id/send", rl("lifecycle"), lifecycleHandler.Send)
		tokens.POST("/:id/unlock", rl("lifecycle"), lifecycleHandler.Unlock)
	}

	v1.POST("/transfers", sessionAuth, rl("lifecycle"), lifecycleHandler.Transfer)
	v1.GET("/transactions", sessionAuth, rl("history"), lifecycleHandler.Activity)
	v1.GET("/balances", sessionAuth, rl("balances"), balanceHandler.GetBalances)

	return r
}
