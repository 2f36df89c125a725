package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Result carries the outcome of a rate limit check along with the
// metadata exposed to clients in X-RateLimit headers.
type Result struct {
	Allowed   bool
	Limit     int
	Count     int
	Remaining int
	ResetTime time.Time
}

// Limiter enforces a fixed-window counter per key in Redis
type Limiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewLimiter creates a new limiter allowing limit requests per window
func NewLimiter(client *redis.Client, limit int, window time.Duration) *Limiter {
	return &Limiter{
		client: client,
		limit:  limit,
		window: window,
	}
}

// Check counts a request against the window for the given user and route.
// A Redis failure is returned as an error so callers can refuse the
// request rather than let traffic through unmetered.
func (l *Limiter) Check(ctx context.Context, userID int, route string) (Result, error) {
	key := fmt.Sprintf("rate_limit:%s:%d", route, userID)

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return Result{}, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}

	if count == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return Result{}, fmt.Errorf("failed to set rate limit window: %w", err)
		}
	}

	ttl, err := l.client.PTTL(ctx, key).Result()
	if err != nil {
		return Result{}, fmt.Errorf("failed to read rate limit window: %w", err)
	}
	if ttl < 0 {
		// Key lost its expiry somehow, re-arm the window.
		ttl = l.window
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return Result{}, fmt.Errorf("failed to re-arm rate limit window: %w", err)
		}
	}

	remaining := l.limit - int(count)
	if remaining < 0 {
		remaining = 0
	}

	return Result{
		Allowed:   count <= int64(l.limit),
		Limit:     l.limit,
		Count:     int(count),
		Remaining: remaining,
		ResetTime: time.Now().Add(ttl),
	}, nil
}
