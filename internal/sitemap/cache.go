package sitemap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	sitemapKey = "sitemap:xml" // Rendered sitemap document
	sitemapTTL = 2 * time.Hour // Outlives several refresh cycles
)

var ErrCacheMiss = errors.New("sitemap not cached")

// RedisCache stores the rendered sitemap in Redis so every process serves the same copy.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context) ([]byte, error) {
	doc, err := c.client.Get(ctx, sitemapKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get sitemap: %w", err)
	}
	return doc, nil
}

func (c *RedisCache) Set(ctx context.Context, doc []byte) error {
	if err := c.client.Set(ctx, sitemapKey, doc, sitemapTTL).Err(); err != nil {
		return fmt.Errorf("failed to set sitemap: %w", err)
	}
	return nil
}
