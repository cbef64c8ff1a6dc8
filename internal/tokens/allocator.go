package tokens

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Allocator hands out the next service token for a calendar day.
// Tokens start at 1, increase monotonically and are never reissued
// within the same day, regardless of later cancellations.
type Allocator interface {
	Next(ctx context.Context, day time.Time) (int, error)
}

// RedisAllocator sequences tokens with an atomic per-day INCR, so two
// approvals racing on different instances can never draw the same
// number. Keys expire two days after first use.
type RedisAllocator struct {
	client *redis.Client
}

func NewRedisAllocator(client *redis.Client) *RedisAllocator {
	return &RedisAllocator{client: client}
}

func (a *RedisAllocator) Next(ctx context.Context, day time.Time) (int, error) {
	key := fmt.Sprintf("tokens:%s", day.Format("2006-01-02"))

	n, err := a.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("tokens: incr %s: %w", key, err)
	}

	// Expiry only on first increment
	if n == 1 {
		a.client.Expire(ctx, key, 48*time.Hour)
	}

	return int(n), nil
}

var _ Allocator = (*RedisAllocator)(nil)
