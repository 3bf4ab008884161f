// Package redis provides the Redis connection used for rate limiting.
package redis

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/habitflow/backend/config"
)

// NewClient creates a Redis client from configuration. The connection
// is probed once at startup; a failed probe is logged but not fatal,
// since the rate limiter degrades to allowing requests when Redis is
// unreachable.
func NewClient(cfg *config.RedisConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("Redis connection failed, rate limiting degraded",
			"addr", cfg.Addr,
			"error", err,
		)
		return client
	}

	slog.Info("Redis connection established", "addr", cfg.Addr)
	return client
}
