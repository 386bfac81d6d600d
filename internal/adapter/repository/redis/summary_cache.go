package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// SummaryCache implements usecase.SummaryCache using Redis.
type SummaryCache struct {
	client *redis.Client
	prefix string
}

// NewSummaryCache creates a new SummaryCache.
func NewSummaryCache(client *redis.Client) *SummaryCache {
	return &SummaryCache{
		client: client,
		prefix: "shopledger:",
	}
}

// Get retrieves a cached summary. A missing key returns (nil, nil).
func (c *SummaryCache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

// Set stores a computed summary with TTL.
func (c *SummaryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, c.prefix+key, value, ttl).Err()
}
