package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

const (
	productKeyPrefix     = "catalog:products:"
	defaultScanBatchSize = 100
)

// RedisProductCache caches storefront product listings in Redis. Misses and
// Redis failures are both reported as cache misses so the storefront keeps
// serving from the database when Redis is down.
type RedisProductCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisProductCache creates a product cache over a new Redis connection
func NewRedisProductCache(cfg config.RedisConfig, logger *zap.Logger) (*RedisProductCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisProductCache{
		client: client,
		ttl:    cfg.CacheTTL,
		logger: logger.Named("product-cache"),
	}, nil
}

// NewRedisProductCacheWithClient creates a cache with an existing Redis client
func NewRedisProductCacheWithClient(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisProductCache {
	return &RedisProductCache{
		client: client,
		ttl:    ttl,
		logger: logger.Named("product-cache"),
	}
}

// GetList returns the cached product listing for the key, if present
func (c *RedisProductCache) GetList(ctx context.Context, key string) ([]catalog.Product, bool) {
	data, err := c.client.Get(ctx, productKeyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	var products []catalog.Product
	if err := json.Unmarshal(data, &products); err != nil {
		c.logger.Warn("cache entry corrupted", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return products, true
}

// SetList stores a product listing under the key with the configured TTL
func (c *RedisProductCache) SetList(ctx context.Context, key string, products []catalog.Product) {
	data, err := json.Marshal(products)
	if err != nil {
		c.logger.Warn("cache marshal failed", zap.String("key", key), zap.Error(err))
		return
	}

	if err := c.client.Set(ctx, productKeyPrefix+key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Invalidate drops every cached product listing. Called after any product
// write so the storefront never serves a stale catalog.
func (c *RedisProductCache) Invalidate(ctx context.Context) {
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, productKeyPrefix+"*", defaultScanBatchSize).Result()
		if err != nil {
			c.logger.Warn("cache invalidation scan failed", zap.Error(err))
			return
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				c.logger.Warn("cache invalidation delete failed", zap.Error(err))
				return
			}
		}
		cursor = next
		if cursor == 0 {
			return
		}
	}
}

// Close closes the Redis client
func (c *RedisProductCache) Close() error {
	return c.client.Close()
}

// NoopProductCache is used when Redis is disabled; every lookup misses
type NoopProductCache struct{}

// GetList always misses
func (NoopProductCache) GetList(ctx context.Context, key string) ([]catalog.Product, bool) {
	return nil, false
}

// SetList does nothing
func (NoopProductCache) SetList(ctx context.Context, key string, products []catalog.Product) {}

// Invalidate does nothing
func (NoopProductCache) Invalidate(ctx context.Context) {}
