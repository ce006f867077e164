package repository

import (
	"context"

	"gaming-zone-booking/internal/domain/user"
	"gaming-zone-booking/internal/infra"
	"gaming-zone-booking/internal/infra/repository/converter"
	sqlc "gaming-zone-booking/internal/infra/sqlc/generated"
	"gaming-zone-booking/internal/pkg/pgconv"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error)
	UpdateUserRole(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserRoleParams) (int64, error)
	UpdateUserProfile(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserProfileParams) (sqlc.Users, error)
}

type UserRepository struct {
	queries UserWriteQueries
	db      sqlc.DBTX
}

func NewUserRepository(queries UserWriteQueries, db sqlc.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

// Create returns KindDuplicateKey when the e-mail is already registered.
func (r *UserRepository) Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (*user.User, error) {
	row, err := r.queries.CreateUser(ctx, tx, converter.UserToCreateParams(u))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create user", err)
	}
	created, err := converter.UserFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert user", err)
	}
	return created, nil
}

func (r *UserRepository) UpdateRole(ctx context.Context, tx sqlc.DBTX, u *user.User) error {
	n, err := r.queries.UpdateUserRole(ctx, tx, sqlc.UpdateUserRoleParams{
		ID:   u.ID(),
		Role: u.Role().String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update user role", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, tx sqlc.DBTX, u *user.User) (*user.User, error) {
	row, err := r.queries.UpdateUserProfile(ctx, tx, sqlc.UpdateUserProfileParams{
		ID:    u.ID(),
		Name:  u.Name(),
		Phone: u.Phone(),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update user profile", err)
	}
	updated, err := converter.UserFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert user", err)
	}
	return updated, nil
}
