package middleware

import (
	"fmt"
	"strconv"
	"time"

	redisStore "ownly-protocol/internal/adapter/storage/redis"
	"ownly-protocol/internal/core/domain"
	"ownly-protocol/pkg/apperror"
	"ownly-protocol/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// DefaultRateLimitRules returns the per-group rate limits. Lifecycle writes
// submit ledger transactions and are budgeted far below the read endpoints.
func DefaultRateLimitRules() map[string]RateLimitRule {
	return map[string]RateLimitRule{
		"wallet_create": {Limit: 5, Window: time.Hour},
		"session":       {Limit: 10, Window: time.Minute},
		"lifecycle":     {Limit: 30, Window: time.Minute},
		"balances":      {Limit: 60, Window: time.Minute},
		"history":       {Limit: 60, Window: time.Minute},
	}
}

// RateLimiter creates a rate-limiting middleware for a given endpoint group.
func RateLimiter(store *redisStore.RateLimitStore, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		identifier := extractIdentifier(c)
		key := fmt.Sprintf("%s:%s", identifier, group)

		result, err := store.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		// Always set rate limit headers
		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			retryAfter := result.ResetAt - time.Now().Unix()
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			response.Error(c, apperror.ErrRateLimitExceeded())
			c.Abort()
			return
		}

		c.Next()
	}
}

// extractIdentifier determines the rate limit key source: the authenticated
// wallet address when a session exists, else the client IP.
func extractIdentifier(c *gin.Context) string {
	if addr, exists := c.Get(CtxAddress); exists {
		if a, ok := addr.(domain.Address); ok {
			return a.String()
		}
	}
	return c.ClientIP()
}
