package repository

import (
	"context"

	"gaming-zone-booking/internal/domain/catalog"
	"gaming-zone-booking/internal/infra"
	"gaming-zone-booking/internal/infra/repository/converter"
	sqlc "gaming-zone-booking/internal/infra/sqlc/generated"
	"gaming-zone-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type VenueWriteQueries interface {
	CreateVenue(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateVenueParams) (sqlc.Venues, error)
	UpdateVenue(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateVenueParams) (sqlc.Venues, error)
	DeleteVenue(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type VenueRepository struct {
	queries VenueWriteQueries
	db      sqlc.DBTX
}

func NewVenueRepository(queries VenueWriteQueries, db sqlc.DBTX) *VenueRepository {
	return &VenueRepository{
		queries: queries,
		db:      db,
	}
}

func (r *VenueRepository) Create(ctx context.Context, tx sqlc.DBTX, v *catalog.Venue) (*catalog.Venue, error) {
	row, err := r.queries.CreateVenue(ctx, tx, converter.VenueToCreateParams(v))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create venue", err)
	}
	created, err := converter.VenueFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert venue", err)
	}
	return created, nil
}

func (r *VenueRepository) Update(ctx context.Context, tx sqlc.DBTX, v *catalog.Venue) (*catalog.Venue, error) {
	row, err := r.queries.UpdateVenue(ctx, tx, converter.VenueToUpdateParams(v))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("venue not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update venue", err)
	}
	updated, err := converter.VenueFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert venue", err)
	}
	return updated, nil
}

func (r *VenueRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteVenue(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete venue", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("venue not found", nil, infra.KindNotFound)
	}
	return nil
}
