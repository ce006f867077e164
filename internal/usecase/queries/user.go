package queries

import (
	"context"

	"gaming-zone-booking/internal/domain/user"
	"gaming-zone-booking/internal/infra"

	"github.com/google/uuid"
)

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error)
	List(ctx context.Context, actor user.Actor, page Page) ([]*UserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	List(ctx context.Context, limit, offset int32) ([]*UserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	u, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (q *userQueriesImpl) List(ctx context.Context, actor user.Actor, page Page) ([]*UserView, error) {
	if !actor.IsAdmin() {
		return nil, user.ErrForbidden
	}
	page = page.Normalize()
	return q.readStore.List(ctx, int32(page.Limit), int32(page.Offset)) // #nosec G115 -- clamped by Normalize
}
