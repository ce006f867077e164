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

type GameWriteQueries interface {
	CreateGame(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateGameParams) (sqlc.Games, error)
	UpdateGame(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateGameParams) (sqlc.Games, error)
	DeleteGame(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type GameRepository struct {
	queries GameWriteQueries
	db      sqlc.DBTX
}

func NewGameRepository(queries GameWriteQueries, db sqlc.DBTX) *GameRepository {
	return &GameRepository{
		queries: queries,
		db:      db,
	}
}

func (r *GameRepository) Create(ctx context.Context, tx sqlc.DBTX, g *catalog.Game) (*catalog.Game, error) {
	row, err := r.queries.CreateGame(ctx, tx, converter.GameToCreateParams(g))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create game", err)
	}
	return converter.GameFromRow(row), nil
}

func (r *GameRepository) Update(ctx context.Context, tx sqlc.DBTX, g *catalog.Game) (*catalog.Game, error) {
	row, err := r.queries.UpdateGame(ctx, tx, converter.GameToUpdateParams(g))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("game not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update game", err)
	}
	return converter.GameFromRow(row), nil
}

func (r *GameRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteGame(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete game", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("game not found", nil, infra.KindNotFound)
	}
	return nil
}
