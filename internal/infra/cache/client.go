package cache

import (
	"context"

	"gaming-zone-booking/internal/pkg/config"
	"gaming-zone-booking/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

func NewClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func Ping(ctx context.Context, client *redis.Client) error {
	if err := client.Ping(ctx).Err(); err != nil {
		return errs.Wrap(err, "redis ping failed")
	}
	return nil
}
