package queries

import (
	"context"
	"log/slog"

	"gaming-zone-booking/internal/domain/booking"
	"gaming-zone-booking/internal/infra"
	"gaming-zone-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

const (
	CacheHit    = "hit"
	CacheMiss   = "miss"
	CacheError  = "error"
	CacheBypass = "bypass"
)

// SlotCache holds the occupied start slots per game and date. Entries are
// keyed by the generation current when the storage read began; invalidation
// bumps the generation, so a set carrying an older generation is never read.
type SlotCache interface {
	Generation(ctx context.Context, gameID uuid.UUID, date booking.Date) (int64, error)
	Get(ctx context.Context, gameID uuid.UUID, date booking.Date, gen int64) ([]string, bool, error)
	Set(ctx context.Context, gameID uuid.UUID, date booking.Date, gen int64, slots []string) error
}

type CacheRecorder interface {
	RecordCacheLookup(result string)
}

type AvailabilityReadStore interface {
	ActiveSlots(ctx context.Context, gameID uuid.UUID, date booking.Date) ([]string, error)
}

type AvailabilityQueries interface {
	ForGame(ctx context.Context, gameID uuid.UUID, date string) (*booking.Availability, error)
}

type availabilityQueriesImpl struct {
	engine   *booking.AvailabilityEngine
	catalog  CatalogReadStore
	store    AvailabilityReadStore
	cache    SlotCache
	recorder CacheRecorder
	clock    clock.Clock
	logger   *slog.Logger
}

func NewAvailabilityQueries(
	engine *booking.AvailabilityEngine,
	catalogStore CatalogReadStore,
	store AvailabilityReadStore,
	cache SlotCache,
	recorder CacheRecorder,
	clk clock.Clock,
	logger *slog.Logger,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		engine:   engine,
		catalog:  catalogStore,
		store:    store,
		cache:    cache,
		recorder: recorder,
		clock:    clk,
		logger:   logger,
	}
}

// ForGame returns the daily grid for the game. An unknown game yields a grid
// with every slot unavailable rather than an error.
func (q *availabilityQueriesImpl) ForGame(ctx context.Context, gameID uuid.UUID, date string) (*booking.Availability, error) {
	d, err := booking.ParseDate(date)
	if err != nil {
		return nil, err
	}

	if _, err := q.catalog.GameByID(ctx, gameID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			a := q.engine.Unavailable(gameID, d)
			return &a, nil
		}
		return nil, err
	}

	occupied, err := q.occupied(ctx, gameID, d)
	if err != nil {
		return nil, err
	}
	a := q.engine.Evaluate(gameID, d, occupied, q.clock.Now())
	return &a, nil
}

// occupied serves from the cache when it can; cache failures fall back to storage.
// The generation is read before storage so a write committed during the read
// leaves this fill under a superseded key.
func (q *availabilityQueriesImpl) occupied(ctx context.Context, gameID uuid.UUID, d booking.Date) ([]string, error) {
	gen, err := q.cache.Generation(ctx, gameID, d)
	if err != nil {
		q.recorder.RecordCacheLookup(CacheError)
		return q.store.ActiveSlots(ctx, gameID, d)
	}

	slots, ok, err := q.cache.Get(ctx, gameID, d, gen)
	switch {
	case err != nil:
		q.recorder.RecordCacheLookup(CacheError)
	case ok:
		q.recorder.RecordCacheLookup(CacheHit)
		return slots, nil
	default:
		q.recorder.RecordCacheLookup(CacheMiss)
	}

	slots, err = q.store.ActiveSlots(ctx, gameID, d)
	if err != nil {
		return nil, err
	}
	if err := q.cache.Set(ctx, gameID, d, gen, slots); err != nil {
		q.logger.WarnContext(ctx, "availability cache fill failed",
			"game_id", gameID, "date", d.String(), "error", err.Error())
	}
	return slots, nil
}
