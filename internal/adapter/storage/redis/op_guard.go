package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// OpGuard implements ports.OpGuard using Redis SET NX. It serialises one
// lifecycle operation per record across concurrent sessions, so two tabs
// racing a send cannot double-create recipient records.
type OpGuard struct {
	client *goredis.Client
	prefix string
}

// NewOpGuard creates a new Redis-backed operation guard.
func NewOpGuard(client *goredis.Client) *OpGuard {
	return &OpGuard{
		client: client,
		prefix: "opguard:",
	}
}

func (g *OpGuard) key(op string, recordID uuid.UUID) string {
	return g.prefix + op + ":" + recordID.String()
}

// Acquire atomically claims the guard. Returns false if another session
// already holds it.
func (g *OpGuard) Acquire(ctx context.Context, op string, recordID uuid.UUID, ttl time.Duration) (bool, error) {
	result, err := g.client.SetArgs(ctx, g.key(op, recordID), 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if err == goredis.Nil {
			// Key already exists — operation in progress elsewhere
			return false, nil
		}
		return false, fmt.Errorf("redis op guard: %w", err)
	}
	return result == "OK", nil
}

// Release drops the guard once the operation completes.
func (g *OpGuard) Release(ctx context.Context, op string, recordID uuid.UUID) error {
	if err := g.client.Del(ctx, g.key(op, recordID)).Err(); err != nil {
		return fmt.Errorf("redis op guard release: %w", err)
	}
	return nil
}
