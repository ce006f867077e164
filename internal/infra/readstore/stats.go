package readstore

import (
	"context"

	"gaming-zone-booking/internal/domain/booking"
	"gaming-zone-booking/internal/infra"
	"gaming-zone-booking/internal/infra/repository/converter"
	sqlc "gaming-zone-booking/internal/infra/sqlc/generated"
	"gaming-zone-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type StatsReadQueries interface {
	GetDashboardCounts(ctx context.Context, db sqlc.DBTX, today pgtype.Date) (sqlc.GetDashboardCountsRow, error)
	ListRecentBookings(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.Bookings, error)
}

type StatsReadStore struct {
	queries StatsReadQueries
	db      sqlc.DBTX
}

func NewStatsReadStore(queries StatsReadQueries, db sqlc.DBTX) *StatsReadStore {
	return &StatsReadStore{
		queries: queries,
		db:      db,
	}
}

// Counts runs the whole aggregate in one statement so the figures share a snapshot.
func (r *StatsReadStore) Counts(ctx context.Context, today booking.Date) (*queries.DashboardCounts, error) {
	row, err := r.queries.GetDashboardCounts(ctx, r.db, converter.DateToPgtype(today))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate dashboard counts", err)
	}
	return &queries.DashboardCounts{
		Venues:        row.VenueCount,
		Games:         row.GameCount,
		Users:         row.UserCount,
		Bookings:      row.BookingCount,
		TodayBookings: row.TodayBookingCount,
		Revenue:       row.Revenue,
	}, nil
}

// RecentBookings returns the latest bookings by creation time.
func (r *StatsReadStore) RecentBookings(ctx context.Context, limit int32) ([]*booking.Booking, error) {
	rows, err := r.queries.ListRecentBookings(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list recent bookings", err)
	}
	return toBookings(rows)
}
