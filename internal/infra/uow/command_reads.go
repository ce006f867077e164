package uow

import (
	"context"

	"gaming-zone-booking/internal/domain/booking"
	"gaming-zone-booking/internal/domain/catalog"
	"gaming-zone-booking/internal/domain/user"
	"gaming-zone-booking/internal/infra"
	"gaming-zone-booking/internal/infra/readstore"
	"gaming-zone-booking/internal/infra/repository/converter"
	sqlc "gaming-zone-booking/internal/infra/sqlc/generated"
	"gaming-zone-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

// commandReads loads write-side aggregates through dbtx, which is either the
// pool or the enclosing transaction.
type commandReads struct {
	q    *sqlc.Queries
	dbtx sqlc.DBTX

	bookingStore *readstore.BookingReadStore
}

func newCommandReads(q *sqlc.Queries, dbtx sqlc.DBTX) *commandReads {
	return &commandReads{q: q, dbtx: dbtx}
}

func (r *commandReads) bookings() *readstore.BookingReadStore {
	if r.bookingStore == nil {
		r.bookingStore = readstore.NewBookingReadStore(r.q, r.dbtx)
	}
	return r.bookingStore
}

func (r *commandReads) BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.bookings().FindByID(ctx, id)
}

func (r *commandReads) ActiveSlots(ctx context.Context, gameID uuid.UUID, date booking.Date) ([]string, error) {
	return r.bookings().ActiveSlots(ctx, gameID, date)
}

func (r *commandReads) GameByID(ctx context.Context, id uuid.UUID) (*catalog.Game, error) {
	row, err := r.q.GetGameByID(ctx, r.dbtx, id)
	if err != nil {
		return nil, notFoundOr("game", err)
	}
	return converter.GameFromRow(row), nil
}

func (r *commandReads) VenueByID(ctx context.Context, id uuid.UUID) (*catalog.Venue, error) {
	row, err := r.q.GetVenueByID(ctx, r.dbtx, id)
	if err != nil {
		return nil, notFoundOr("venue", err)
	}
	v, err := converter.VenueFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert venue", err)
	}
	return v, nil
}

func (r *commandReads) CafeItemByID(ctx context.Context, id uuid.UUID) (*catalog.CafeItem, error) {
	row, err := r.q.GetCafeItemByID(ctx, r.dbtx, id)
	if err != nil {
		return nil, notFoundOr("cafe item", err)
	}
	return converter.CafeItemFromRow(row), nil
}

// CafeItemsByIDs skips unknown ids.
func (r *commandReads) CafeItemsByIDs(ctx context.Context, ids []uuid.UUID) ([]*catalog.CafeItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.q.GetCafeItemsByIDs(ctx, r.dbtx, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load cafe items", err)
	}
	items := make([]*catalog.CafeItem, len(rows))
	for i, row := range rows {
		items[i] = converter.CafeItemFromRow(row)
	}
	return items, nil
}

func (r *commandReads) UserByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row, err := r.q.FindUserByID(ctx, r.dbtx, id)
	if err != nil {
		return nil, notFoundOr("user", err)
	}
	return userFromRow(row)
}

func (r *commandReads) UserByEmail(ctx context.Context, email string) (*user.User, error) {
	row, err := r.q.FindUserByEmail(ctx, r.dbtx, email)
	if err != nil {
		return nil, notFoundOr("user", err)
	}
	return userFromRow(row)
}

func userFromRow(row sqlc.Users) (*user.User, error) {
	u, err := converter.UserFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert user", err)
	}
	return u, nil
}

func notFoundOr(entity string, err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(entity+" not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr("failed to load "+entity, err)
}
