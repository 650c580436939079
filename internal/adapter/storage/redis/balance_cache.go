package redis

import (
	"context"
	"fmt"
	"time"

	"ownly-protocol/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// BalanceCache implements ports.BalanceCache: a short-TTL per-(address, token)
// cache over ledger balance queries, standing in for the dashboard's periodic
// polling refresh.
type BalanceCache struct {
	client *goredis.Client
	prefix string
}

// NewBalanceCache creates a new Redis-backed balance cache.
func NewBalanceCache(client *goredis.Client) *BalanceCache {
	return &BalanceCache{
		client: client,
		prefix: "balance:",
	}
}

func (c *BalanceCache) key(address domain.Address, symbol string) string {
	return c.prefix + address.String() + ":" + symbol
}

// Get retrieves a cached balance in base units. Returns "" on miss.
func (c *BalanceCache) Get(ctx context.Context, address domain.Address, symbol string) (string, error) {
	val, err := c.client.Get(ctx, c.key(address, symbol)).Result()
	if err != nil {
		if err == goredis.Nil {
			return "", nil
		}
		return "", fmt.Errorf("redis balance get: %w", err)
	}
	return val, nil
}

// Set stores a balance with TTL.
func (c *BalanceCache) Set(ctx context.Context, address domain.Address, symbol string, baseUnits string, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.key(address, symbol), baseUnits, ttl).Err(); err != nil {
		return fmt.Errorf("redis balance set: %w", err)
	}
	return nil
}
