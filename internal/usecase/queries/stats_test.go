//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"gaming-zone-booking/internal/domain/booking"
	"gaming-zone-booking/internal/pkg/clock"
	"gaming-zone-booking/internal/pkg/errs"
	"gaming-zone-booking/internal/usecase/queries"
	"gaming-zone-booking/tests/common/builder"
	queriesmock "gaming-zone-booking/tests/mock/queries"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type StatsQueriesTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	store *queriesmock.MockStatsReadStore
	q     queries.StatsQueries
}

func (s *StatsQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = queriesmock.NewMockStatsReadStore(s.ctrl)

	loc, err := time.LoadLocation("Asia/Kolkata")
	s.Require().NoError(err)
	grid, err := booking.NewGrid(10, 22)
	s.Require().NoError(err)
	// 20:00 UTC is already the next day in Kolkata.
	clk := clock.NewMockClock(time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC))
	s.q = queries.NewStatsQueries(s.store, booking.NewAvailabilityEngine(grid, loc), clk)
}

func (s *StatsQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestStatsQueriesSuite(t *testing.T) {
	suite.Run(t, new(StatsQueriesTestSuite))
}

func (s *StatsQueriesTestSuite) TestDashboard() {
	admin := builder.NewUserBuilder().AsAdmin().BuildActor()
	ctx := context.Background()

	s.Run("success: combines counts with the latest bookings", func() {
		recent := []*booking.Booking{
			builder.NewBookingBuilder().BuildDomain(),
			builder.NewBookingBuilder().WithStatus("confirmed").BuildDomain(),
		}
		s.store.EXPECT().Counts(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, today booking.Date) (*queries.DashboardCounts, error) {
				s.Equal("2026-03-11", today.String())
				return &queries.DashboardCounts{
					Venues: 3, Games: 7, Users: 12, Bookings: 40, TodayBookings: 4, Revenue: 25600,
				}, nil
			})
		s.store.EXPECT().RecentBookings(gomock.Any(), int32(5)).Return(recent, nil)

		view, err := s.q.Dashboard(ctx, admin)

		s.Require().NoError(err)
		s.Equal(int64(3), view.TotalVenues)
		s.Equal(int64(7), view.TotalGames)
		s.Equal(int64(12), view.TotalUsers)
		s.Equal(int64(40), view.TotalBookings)
		s.Equal(int64(4), view.TodayBookings)
		s.Equal(int64(25600), view.Revenue)
		s.Require().Len(view.RecentBookings, 2)
		s.Equal(recent[0].ID(), view.RecentBookings[0].ID)
	})

	s.Run("success: empty platform", func() {
		s.store.EXPECT().Counts(gomock.Any(), gomock.Any()).Return(&queries.DashboardCounts{}, nil)
		s.store.EXPECT().RecentBookings(gomock.Any(), gomock.Any()).Return(nil, nil)

		view, err := s.q.Dashboard(ctx, admin)

		s.Require().NoError(err)
		s.Zero(view.Revenue)
		s.NotNil(view.RecentBookings)
		s.Empty(view.RecentBookings)
	})

	s.Run("error: players cannot see the dashboard", func() {
		_, err := s.q.Dashboard(ctx, builder.NewUserBuilder().BuildActor())
		s.ErrorIs(err, booking.ErrAdminOnly)
	})

	s.Run("error: aggregate failure skips the recent list", func() {
		s.store.EXPECT().Counts(gomock.Any(), gomock.Any()).Return(nil, errs.New("connection refused"))

		view, err := s.q.Dashboard(ctx, admin)

		s.Error(err)
		s.Nil(view)
	})
}
