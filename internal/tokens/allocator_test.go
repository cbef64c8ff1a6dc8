package tokens

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return client, mr
}

func TestRedisAllocator_Sequence(t *testing.T) {
	client, _ := setupTestRedis(t)
	alloc := NewRedisAllocator(client)
	ctx := context.Background()

	day := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

	for want := 1; want <= 5; want++ {
		got, err := alloc.Next(ctx, day)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestRedisAllocator_DaysAreIndependent(t *testing.T) {
	client, _ := setupTestRedis(t)
	alloc := NewRedisAllocator(client)
	ctx := context.Background()

	monday := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	tuesday := monday.Add(24 * time.Hour)

	for i := 0; i < 3; i++ {
		_, err := alloc.Next(ctx, monday)
		require.NoError(t, err)
	}

	got, err := alloc.Next(ctx, tuesday)
	require.NoError(t, err)
	assert.Equal(t, 1, got, "a new day starts its own sequence")

	got, err = alloc.Next(ctx, monday)
	require.NoError(t, err)
	assert.Equal(t, 4, got, "the old day keeps counting")
}

func TestRedisAllocator_KeyExpires(t *testing.T) {
	client, mr := setupTestRedis(t)
	alloc := NewRedisAllocator(client)
	ctx := context.Background()

	day := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	_, err := alloc.Next(ctx, day)
	require.NoError(t, err)

	ttl := mr.TTL("tokens:2025-03-10")
	assert.Equal(t, 48*time.Hour, ttl)
}
