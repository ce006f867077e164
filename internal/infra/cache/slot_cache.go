package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gaming-zone-booking/internal/domain/booking"
	"gaming-zone-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// generationTTL outlives any entry, so a generation counter that expires and
// restarts from zero can only land on keys that have already expired.
const generationTTL = 48 * time.Hour

// SlotCache keeps the occupied start slots of one game on one date.
// Entries live under the generation that was current when the reader started
// its storage query. Invalidate bumps the generation, which orphans every
// entry written for an older one, including fills still in flight.
type SlotCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSlotCache(client *redis.Client, ttl time.Duration) *SlotCache {
	return &SlotCache{client: client, ttl: ttl}
}

func (c *SlotCache) Generation(ctx context.Context, gameID uuid.UUID, date booking.Date) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey(gameID, date)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, errs.Wrap(err, "slot cache generation")
	}
	return gen, nil
}

func (c *SlotCache) Get(ctx context.Context, gameID uuid.UUID, date booking.Date, gen int64) ([]string, bool, error) {
	raw, err := c.client.Get(ctx, slotKey(gameID, date, gen)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, errs.Wrap(err, "slot cache get")
	}

	var slots []string
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false, errs.Wrap(err, "slot cache decode")
	}
	return slots, true, nil
}

func (c *SlotCache) Set(ctx context.Context, gameID uuid.UUID, date booking.Date, gen int64, slots []string) error {
	if slots == nil {
		slots = []string{}
	}
	raw, err := json.Marshal(slots)
	if err != nil {
		return errs.Wrap(err, "slot cache encode")
	}
	if err := c.client.Set(ctx, slotKey(gameID, date, gen), raw, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "slot cache set")
	}
	return nil
}

func (c *SlotCache) Invalidate(ctx context.Context, gameID uuid.UUID, date booking.Date) error {
	key := generationKey(gameID, date)
	pipe := c.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, generationTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return errs.Wrap(err, "slot cache invalidate")
	}
	return nil
}

func slotKey(gameID uuid.UUID, date booking.Date, gen int64) string {
	return fmt.Sprintf("availability:%s:%s:%d", gameID, date, gen)
}

func generationKey(gameID uuid.UUID, date booking.Date) string {
	return fmt.Sprintf("availability:gen:%s:%s", gameID, date)
}

// NoopSlotCache always misses. Used when no Redis address is configured.
type NoopSlotCache struct{}

func (NoopSlotCache) Generation(context.Context, uuid.UUID, booking.Date) (int64, error) {
	return 0, nil
}

func (NoopSlotCache) Get(context.Context, uuid.UUID, booking.Date, int64) ([]string, bool, error) {
	return nil, false, nil
}

func (NoopSlotCache) Set(context.Context, uuid.UUID, booking.Date, int64, []string) error { return nil }

func (NoopSlotCache) Invalidate(context.Context, uuid.UUID, booking.Date) error { return nil }
