package bootstrap

import (
	"context"
	"log/slog"

	"gaming-zone-booking/internal/infra/cache"
	"gaming-zone-booking/internal/pkg/config"
	"gaming-zone-booking/internal/usecase/commands"
	"gaming-zone-booking/internal/usecase/queries"
	"gaming-zone-booking/internal/worker"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewCache,
	),
)

type CacheResult struct {
	fx.Out

	Slots       queries.SlotCache
	Invalidator commands.SlotCacheInvalidator
	Locker      worker.Locker
}

// NewCache falls back to a no-op cache and an in-process lock when REDIS_ADDR is empty.
func NewCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) CacheResult {
	if cfg.Redis.Addr == "" {
		logger.Info("redis disabled, availability cache off")
		return CacheResult{
			Slots:       cache.NoopSlotCache{},
			Invalidator: cache.NoopSlotCache{},
			Locker:      cache.LocalLocker{},
		}
	}

	client := cache.NewClient(cfg.Redis)
	slots := cache.NewSlotCache(client, cfg.Redis.CacheTTL)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// An unreachable Redis degrades to storage reads; it does not block startup.
			if err := cache.Ping(ctx, client); err != nil {
				logger.Warn("redis ping failed", "addr", cfg.Redis.Addr, "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return CacheResult{
		Slots:       slots,
		Invalidator: slots,
		Locker:      cache.NewLockManager(client),
	}
}
