package queries

import (
	"context"

	"gaming-zone-booking/internal/domain/booking"
	"gaming-zone-booking/internal/domain/user"
	"gaming-zone-booking/internal/pkg/clock"
)

const recentBookingsLimit = 5

// DashboardCounts is the aggregate row behind the admin dashboard.
type DashboardCounts struct {
	Venues        int64
	Games         int64
	Users         int64
	Bookings      int64
	TodayBookings int64
	Revenue       int64
}

type StatsQueries interface {
	Dashboard(ctx context.Context, actor user.Actor) (*DashboardView, error)
}

type StatsReadStore interface {
	Counts(ctx context.Context, today booking.Date) (*DashboardCounts, error)
	RecentBookings(ctx context.Context, limit int32) ([]*booking.Booking, error)
}

type statsQueriesImpl struct {
	store  StatsReadStore
	engine *booking.AvailabilityEngine
	clock  clock.Clock
}

func NewStatsQueries(store StatsReadStore, engine *booking.AvailabilityEngine, clk clock.Clock) StatsQueries {
	return &statsQueriesImpl{store: store, engine: engine, clock: clk}
}

// Dashboard reports totals across the platform. Revenue sums confirmed and
// completed bookings; "today" is the venue-local date.
func (q *statsQueriesImpl) Dashboard(ctx context.Context, actor user.Actor) (*DashboardView, error) {
	if !actor.IsAdmin() {
		return nil, booking.ErrAdminOnly
	}

	counts, err := q.store.Counts(ctx, q.engine.Today(q.clock.Now()))
	if err != nil {
		return nil, err
	}
	recent, err := q.store.RecentBookings(ctx, recentBookingsLimit)
	if err != nil {
		return nil, err
	}

	return &DashboardView{
		TotalVenues:    counts.Venues,
		TotalGames:     counts.Games,
		TotalBookings:  counts.Bookings,
		TotalUsers:     counts.Users,
		TodayBookings:  counts.TodayBookings,
		Revenue:        counts.Revenue,
		RecentBookings: bookingViews(recent),
	}, nil
}
