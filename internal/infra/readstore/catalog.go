package readstore

import (
	"context"

	"gaming-zone-booking/internal/infra"
	sqlc "gaming-zone-booking/internal/infra/sqlc/generated"
	"gaming-zone-booking/internal/pkg/pgconv"
	"gaming-zone-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CatalogReadQueries interface {
	ListVenues(ctx context.Context, db sqlc.DBTX, city pgtype.Text) ([]sqlc.Venues, error)
	GetVenueByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Venues, error)
	GetGameByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Games, error)
	ListGamesByVenue(ctx context.Context, db sqlc.DBTX, venueID uuid.UUID) ([]sqlc.Games, error)
	ListCafeItemsByVenue(ctx context.Context, db sqlc.DBTX, venueID uuid.UUID) ([]sqlc.CafeItems, error)
	ListAvailableCafeItemsByVenue(ctx context.Context, db sqlc.DBTX, venueID uuid.UUID) ([]sqlc.CafeItems, error)
}

type CatalogReadStore struct {
	queries CatalogReadQueries
	db      sqlc.DBTX
}

func NewCatalogReadStore(queries CatalogReadQueries, db sqlc.DBTX) *CatalogReadStore {
	return &CatalogReadStore{
		queries: queries,
		db:      db,
	}
}

// ListVenues filters by city when one is given.
func (r *CatalogReadStore) ListVenues(ctx context.Context, city string) ([]*queries.VenueView, error) {
	rows, err := r.queries.ListVenues(ctx, r.db, pgconv.OptionalText(city))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list venues", err)
	}

	result := make([]*queries.VenueView, len(rows))
	for i, row := range rows {
		v, err := toVenueView(row)
		if err != nil {
			return nil, err
		}
		result[i] = v
	}
	return result, nil
}

func (r *CatalogReadStore) VenueByID(ctx context.Context, id uuid.UUID) (*queries.VenueView, error) {
	row, err := r.queries.GetVenueByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("venue not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find venue by ID", err)
	}
	return toVenueView(row)
}

func (r *CatalogReadStore) GameByID(ctx context.Context, id uuid.UUID) (*queries.GameView, error) {
	row, err := r.queries.GetGameByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("game not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find game by ID", err)
	}
	return toGameView(row), nil
}

func (r *CatalogReadStore) GamesByVenue(ctx context.Context, venueID uuid.UUID) ([]*queries.GameView, error) {
	rows, err := r.queries.ListGamesByVenue(ctx, r.db, venueID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list games by venue", err)
	}

	result := make([]*queries.GameView, len(rows))
	for i, row := range rows {
		result[i] = toGameView(row)
	}
	return result, nil
}

func (r *CatalogReadStore) CafeItemsByVenue(ctx context.Context, venueID uuid.UUID, includeUnavailable bool) ([]*queries.CafeItemView, error) {
	var (
		rows []sqlc.CafeItems
		err  error
	)
	if includeUnavailable {
		rows, err = r.queries.ListCafeItemsByVenue(ctx, r.db, venueID)
	} else {
		rows, err = r.queries.ListAvailableCafeItemsByVenue(ctx, r.db, venueID)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cafe items by venue", err)
	}

	result := make([]*queries.CafeItemView, len(rows))
	for i, row := range rows {
		result[i] = toCafeItemView(row)
	}
	return result, nil
}

func toVenueView(row sqlc.Venues) (*queries.VenueView, error) {
	rating, err := pgconv.Float64FromNumeric(row.Rating)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid venue rating", err)
	}
	return &queries.VenueView{
		ID:            row.ID,
		Name:          row.Name,
		Address:       row.Address,
		Area:          row.Area,
		City:          row.City,
		Phone:         row.Phone,
		Email:         row.Email,
		Description:   row.Description,
		ImageURL:      row.ImageUrl,
		Timing:        row.Timing,
		IsOpen:        row.IsOpen,
		StartingPrice: row.StartingPrice,
		Rating:        rating,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func toGameView(row sqlc.Games) *queries.GameView {
	return &queries.GameView{
		ID:           row.ID,
		VenueID:      row.VenueID,
		Name:         row.Name,
		Description:  row.Description,
		ImageURL:     row.ImageUrl,
		PricePerHour: row.PricePerHour,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func toCafeItemView(row sqlc.CafeItems) *queries.CafeItemView {
	return &queries.CafeItemView{
		ID:          row.ID,
		VenueID:     row.VenueID,
		Name:        row.Name,
		Category:    row.Category,
		Price:       row.Price,
		IsAvailable: row.IsAvailable,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
