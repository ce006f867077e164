package queries

import (
	"context"

	"gaming-zone-booking/internal/domain/catalog"
	"gaming-zone-booking/internal/domain/user"
	"gaming-zone-booking/internal/infra"

	"github.com/google/uuid"
)

type CatalogQueries interface {
	ListVenues(ctx context.Context, city string) ([]*VenueView, error)
	GetVenue(ctx context.Context, id uuid.UUID) (*VenueDetailView, error)
	GetGame(ctx context.Context, id uuid.UUID) (*GameView, error)
	// ListCafeItems includes unavailable items; admin only.
	ListCafeItems(ctx context.Context, actor user.Actor, venueID uuid.UUID) ([]*CafeItemView, error)
}

type CatalogReadStore interface {
	ListVenues(ctx context.Context, city string) ([]*VenueView, error)
	VenueByID(ctx context.Context, id uuid.UUID) (*VenueView, error)
	GameByID(ctx context.Context, id uuid.UUID) (*GameView, error)
	GamesByVenue(ctx context.Context, venueID uuid.UUID) ([]*GameView, error)
	CafeItemsByVenue(ctx context.Context, venueID uuid.UUID, includeUnavailable bool) ([]*CafeItemView, error)
}

type catalogQueriesImpl struct {
	store CatalogReadStore
}

func NewCatalogQueries(store CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) ListVenues(ctx context.Context, city string) ([]*VenueView, error) {
	return q.store.ListVenues(ctx, city)
}

// GetVenue returns the venue with its games and the cafe items currently on offer.
func (q *catalogQueriesImpl) GetVenue(ctx context.Context, id uuid.UUID) (*VenueDetailView, error) {
	v, err := q.store.VenueByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, catalog.ErrVenueNotFound
		}
		return nil, err
	}
	games, err := q.store.GamesByVenue(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := q.store.CafeItemsByVenue(ctx, id, false)
	if err != nil {
		return nil, err
	}
	return &VenueDetailView{Venue: v, Games: games, CafeItems: items}, nil
}

func (q *catalogQueriesImpl) GetGame(ctx context.Context, id uuid.UUID) (*GameView, error) {
	g, err := q.store.GameByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, catalog.ErrGameNotFound
		}
		return nil, err
	}
	return g, nil
}

func (q *catalogQueriesImpl) ListCafeItems(ctx context.Context, actor user.Actor, venueID uuid.UUID) ([]*CafeItemView, error) {
	if !actor.IsAdmin() {
		return nil, user.ErrForbidden
	}
	return q.store.CafeItemsByVenue(ctx, venueID, true)
}
