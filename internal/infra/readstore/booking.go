package readstore

import (
	"context"

	"gaming-zone-booking/internal/domain/booking"
	"gaming-zone-booking/internal/infra"
	"gaming-zone-booking/internal/infra/repository/converter"
	sqlc "gaming-zone-booking/internal/infra/sqlc/generated"
	"gaming-zone-booking/internal/pkg/pgconv"
	"gaming-zone-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	ListBookingsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByUserParams) ([]sqlc.Bookings, error)
	ListBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsParams) ([]sqlc.Bookings, error)
	ListActiveSlotsByGameAndDate(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveSlotsByGameAndDateParams) ([]string, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking", err)
	}
	return b, nil
}

// ListByUser returns the user's bookings, newest first.
func (r *BookingReadStore) ListByUser(ctx context.Context, userID uuid.UUID, status *booking.Status, limit int32) ([]*booking.Booking, error) {
	params := sqlc.ListBookingsByUserParams{
		UserID: userID,
		Lim:    limit,
	}
	if status != nil {
		params.Status = pgconv.StringToPgtype(status.String())
	}

	rows, err := r.queries.ListBookingsByUser(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user", err)
	}
	return toBookings(rows)
}

func (r *BookingReadStore) List(ctx context.Context, f queries.BookingFilter) ([]*booking.Booking, error) {
	params := sqlc.ListBookingsParams{
		GameID:  pgconv.UUIDPtrToPgtype(f.GameID),
		VenueID: pgconv.UUIDPtrToPgtype(f.VenueID),
		Lim:     int32(f.Page.Limit),  // #nosec G115 -- normalized by the caller
		Off:     int32(f.Page.Offset), // #nosec G115 -- normalized by the caller
	}
	if f.Status != nil {
		params.Status = pgconv.StringToPgtype(f.Status.String())
	}
	if f.Date != nil {
		params.BookingDate = converter.DateToPgtype(*f.Date)
	}

	rows, err := r.queries.ListBookings(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	return toBookings(rows)
}

// ActiveSlots lists the start slots held by pending or confirmed bookings.
func (r *BookingReadStore) ActiveSlots(ctx context.Context, gameID uuid.UUID, date booking.Date) ([]string, error) {
	slots, err := r.queries.ListActiveSlotsByGameAndDate(ctx, r.db, sqlc.ListActiveSlotsByGameAndDateParams{
		GameID:      gameID,
		BookingDate: converter.DateToPgtype(date),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active slots", err)
	}
	return slots, nil
}

func toBookings(rows []sqlc.Bookings) ([]*booking.Booking, error) {
	out, err := converter.BookingsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert bookings", err)
	}
	return out, nil
}
