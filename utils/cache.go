package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"casaherenia/config"
)

// NewCacheClient initializes the Redis cache client used for feed and
// availability caching.
func NewCacheClient(cfg config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis (cache): %w", err)
	}
	return client, nil
}
