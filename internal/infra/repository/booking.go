package repository

import (
	"context"

	"gaming-zone-booking/internal/domain/booking"
	"gaming-zone-booking/internal/infra"
	"gaming-zone-booking/internal/infra/repository/converter"
	sqlc "gaming-zone-booking/internal/infra/sqlc/generated"
	"gaming-zone-booking/internal/pkg/pgconv"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error)
	ListRemindableBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRemindableBookingsParams) ([]sqlc.Bookings, error)
	MarkBookingReminderQueued(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkBookingReminderQueuedParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

// Create relies on the partial unique index over active bookings; a lost
// race surfaces as KindDuplicateKey.
func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	params, err := converter.BookingToCreateParams(b)
	if err != nil {
		return infra.WrapRepoErr("failed to convert booking", err)
	}
	if err := r.queries.CreateBooking(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking, guardVersion int) error {
	n, err := r.queries.UpdateBookingStatus(ctx, tx, converter.BookingToStatusParams(b, guardVersion))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking was modified concurrently", nil, infra.KindConflict)
	}
	return nil
}

func (r *BookingRepository) ListRemindable(ctx context.Context, tx sqlc.DBTX, date booking.Date, limit int32) ([]*booking.Booking, error) {
	rows, err := r.queries.ListRemindableBookings(ctx, tx, sqlc.ListRemindableBookingsParams{
		BookingDate: converter.DateToPgtype(date),
		Limit:       limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list remindable bookings", err)
	}
	out, err := converter.BookingsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert bookings", err)
	}
	return out, nil
}

func (r *BookingRepository) MarkReminderQueued(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	n, err := r.queries.MarkBookingReminderQueued(ctx, tx, sqlc.MarkBookingReminderQueuedParams{
		ID:               b.ID(),
		ReminderQueuedAt: pgconv.TimePtrToPgtype(b.ReminderQueuedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark reminder queued", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
