package validator

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultCachePrefix = "mx:"
	defaultCacheTTL    = time.Hour
)

// RedisDomainCache stores per-domain MX verdicts under "<prefix><domain>".
type RedisDomainCache struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

func NewRedisDomainCache(client redis.UniversalClient, ttl time.Duration) *RedisDomainCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &RedisDomainCache{client: client, prefix: defaultCachePrefix, ttl: ttl}
}

func (c *RedisDomainCache) Get(ctx context.Context, domain string) (bool, bool, error) {
	value, err := c.client.Get(ctx, c.prefix+domain).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, false, nil
		}
		return false, false, err
	}
	return value == "1", true, nil
}

func (c *RedisDomainCache) Set(ctx context.Context, domain string, accepts bool) error {
	value := "0"
	if accepts {
		value = "1"
	}
	return c.client.Set(ctx, c.prefix+domain, value, c.ttl).Err()
}
