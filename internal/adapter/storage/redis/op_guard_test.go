package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpGuard_AcquireAndRelease(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	guard := NewOpGuard(client)
	ctx := context.Background()
	recordID := uuid.New()

	ok, err := guard.Acquire(ctx, "send", recordID, 30*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	// Second acquisition is refused while the guard is held.
	ok, err = guard.Acquire(ctx, "send", recordID, 30*time.Second)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, guard.Release(ctx, "send", recordID))

	ok, err = guard.Acquire(ctx, "send", recordID, 30*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestOpGuard_ScopedPerOperation(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	guard := NewOpGuard(client)
	ctx := context.Background()
	recordID := uuid.New()

	ok, err := guard.Acquire(ctx, "send", recordID, 30*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	// A different operation on the same record is independent.
	ok, err = guard.Acquire(ctx, "unlock", recordID, 30*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestOpGuard_ExpiresWithTTL(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	guard := NewOpGuard(client)
	ctx := context.Background()
	recordID := uuid.New()

	ok, err := guard.Acquire(ctx, "send", recordID, 10*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	// A crashed holder never releases; the TTL frees the guard.
	s.FastForward(11 * time.Second)

	ok, err = guard.Acquire(ctx, "send", recordID, 10*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
}
