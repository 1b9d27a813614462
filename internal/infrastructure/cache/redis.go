package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"portfolio-api/config"
)

const ProfileKey = "portfolio:profile"

type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// ProfileCache keeps the rendered public profile response in Redis.
type ProfileCache struct {
	client redisClient
	ttl    time.Duration
}

func New(ctx context.Context, logger *zap.Logger, cfg config.Redis) (*ProfileCache, *redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("redis ping failed: %w", err)
	}

	logger.Info("redis connected successfully", zap.String("addr", cfg.Addr))

	return NewProfileCache(rdb, cfg.ProfileTTL), rdb, nil
}

func NewProfileCache(client redisClient, ttl time.Duration) *ProfileCache {
	return &ProfileCache{client: client, ttl: ttl}
}

// Get returns (nil, nil) on a cache miss.
func (c *ProfileCache) Get(ctx context.Context) ([]byte, error) {
	b, err := c.client.Get(ctx, ProfileKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return b, nil
}

func (c *ProfileCache) Set(ctx context.Context, data []byte) error {
	return c.client.Set(ctx, ProfileKey, data, c.ttl).Err()
}

func (c *ProfileCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, ProfileKey).Err()
}
