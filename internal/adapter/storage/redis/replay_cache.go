package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ReplayCache implements ports.ReplayCache using Redis. It only suppresses
// duplicate callbacks cheaply; the conditional database write stays
// authoritative, so a flushed or unavailable cache is safe.
type ReplayCache struct {
	client *goredis.Client
	prefix string
}

// NewReplayCache creates a new Redis-backed replay cache.
func NewReplayCache(client *goredis.Client) *ReplayCache {
	return &ReplayCache{
		client: client,
		prefix: "callback:seen:",
	}
}

// Seen reports whether the trade number was already reconciled.
func (c *ReplayCache) Seen(ctx context.Context, tradeNo string) (bool, error) {
	n, err := c.client.Exists(ctx, c.prefix+tradeNo).Result()
	if err != nil {
		return false, fmt.Errorf("redis replay check: %w", err)
	}
	return n > 0, nil
}

// MarkSeen records the trade number with a TTL.
func (c *ReplayCache) MarkSeen(ctx context.Context, tradeNo string, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+tradeNo, "1", ttl).Err(); err != nil {
		return fmt.Errorf("redis replay mark: %w", err)
	}
	return nil
}
