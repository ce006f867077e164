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

type CafeItemWriteQueries interface {
	CreateCafeItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCafeItemParams) (sqlc.CafeItems, error)
	UpdateCafeItem(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCafeItemParams) (sqlc.CafeItems, error)
	DeleteCafeItem(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type CafeItemRepository struct {
	queries CafeItemWriteQueries
	db      sqlc.DBTX
}

func NewCafeItemRepository(queries CafeItemWriteQueries, db sqlc.DBTX) *CafeItemRepository {
	return &CafeItemRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CafeItemRepository) Create(ctx context.Context, tx sqlc.DBTX, item *catalog.CafeItem) (*catalog.CafeItem, error) {
	row, err := r.queries.CreateCafeItem(ctx, tx, converter.CafeItemToCreateParams(item))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create cafe item", err)
	}
	return converter.CafeItemFromRow(row), nil
}

func (r *CafeItemRepository) Update(ctx context.Context, tx sqlc.DBTX, item *catalog.CafeItem) (*catalog.CafeItem, error) {
	row, err := r.queries.UpdateCafeItem(ctx, tx, converter.CafeItemToUpdateParams(item))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("cafe item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update cafe item", err)
	}
	return converter.CafeItemFromRow(row), nil
}

func (r *CafeItemRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteCafeItem(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete cafe item", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("cafe item not found", nil, infra.KindNotFound)
	}
	return nil
}
