//go:build unit

package worker_test

import (
	"context"
	"testing"
	"time"

	"gaming-zone-booking/internal/domain/booking"
	"gaming-zone-booking/internal/domain/notification"
	"gaming-zone-booking/internal/infra/cache"
	"gaming-zone-booking/internal/pkg/clock"
	"gaming-zone-booking/internal/pkg/errs"
	"gaming-zone-booking/internal/usecase/shared"
	"gaming-zone-booking/internal/worker"
	"gaming-zone-booking/tests/common/builder"
	sharedmock "gaming-zone-booking/tests/mock/shared"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReminderSchedulerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	bookings      *sharedmock.MockBookingRepository
	notifications *sharedmock.MockNotificationRepository
	ist           *time.Location
	now           time.Time
	tomorrow      booking.Date
}

func (s *ReminderSchedulerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.bookings = sharedmock.NewMockBookingRepository(s.ctrl)
	s.notifications = sharedmock.NewMockNotificationRepository(s.ctrl)
	s.ist = time.FixedZone("IST", 5*3600+1800)
	// 20:00 UTC on the 9th is already the 10th in IST
	s.now = time.Date(2026, 3, 9, 20, 0, 0, 0, time.UTC)
	tomorrow, err := booking.ParseDate("2026-03-11")
	s.Require().NoError(err)
	s.tomorrow = tomorrow

	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()
	s.tx.EXPECT().Bookings().Return(s.bookings).AnyTimes()
	s.tx.EXPECT().Notifications().Return(s.notifications).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()
}

func (s *ReminderSchedulerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReminderSchedulerTestSuite(t *testing.T) {
	suite.Run(t, new(ReminderSchedulerTestSuite))
}

func (s *ReminderSchedulerTestSuite) scheduler(locker worker.Locker, batch int32) *worker.ReminderScheduler {
	return worker.NewReminderScheduler(s.uow, locker, s.ist, clock.NewMockClock(s.now), time.Minute, batch, discardLogger())
}

func (s *ReminderSchedulerTestSuite) due(n int) []*booking.Booking {
	out := make([]*booking.Booking, n)
	for i := range out {
		out[i] = builder.NewBookingBuilder().WithSlot("2026-03-11", "18:00").BuildDomain()
	}
	return out
}

func (s *ReminderSchedulerTestSuite) expectQueued(bs []*booking.Booking) {
	for range bs {
		s.notifications.EXPECT().
			CreateJob(gomock.Any(), gomock.Any(), notification.ChannelEmail, string(notification.KindReminder), gomock.Any(), s.now).
			Return(nil)
	}
	for _, b := range bs {
		s.bookings.EXPECT().MarkReminderQueued(gomock.Any(), gomock.Any(), b).
			DoAndReturn(func(_ context.Context, _ any, got *booking.Booking) error {
				s.Require().NotNil(got.ReminderQueuedAt())
				s.Equal(s.now, *got.ReminderQueuedAt())
				return nil
			})
	}
}

func (s *ReminderSchedulerTestSuite) TestRunOnceQueuesTomorrowsBookings() {
	bs := s.due(2)
	s.bookings.EXPECT().ListRemindable(gomock.Any(), gomock.Any(), s.tomorrow, int32(10)).Return(bs, nil)
	s.expectQueued(bs)

	n, err := s.scheduler(cache.LocalLocker{}, 10).RunOnce(context.Background())

	s.Require().NoError(err)
	s.Equal(2, n)
}

func (s *ReminderSchedulerTestSuite) TestRunOnceDrainsFullBatches() {
	first, second := s.due(2), s.due(1)
	gomock.InOrder(
		s.bookings.EXPECT().ListRemindable(gomock.Any(), gomock.Any(), s.tomorrow, int32(2)).Return(first, nil),
		s.bookings.EXPECT().ListRemindable(gomock.Any(), gomock.Any(), s.tomorrow, int32(2)).Return(second, nil),
	)
	s.expectQueued(append(first, second...))

	n, err := s.scheduler(cache.LocalLocker{}, 2).RunOnce(context.Background())

	s.Require().NoError(err)
	s.Equal(3, n)
}

func (s *ReminderSchedulerTestSuite) TestRunOnceSkipsWithoutLock() {
	locker := &mockLocker{}
	locker.On("Acquire", mock.Anything, "reminder-scheduler", time.Minute).Return(nil, cache.ErrLockNotAcquired)

	n, err := s.scheduler(locker, 10).RunOnce(context.Background())

	s.Require().NoError(err)
	s.Zero(n)
	locker.AssertExpectations(s.T())
}

func (s *ReminderSchedulerTestSuite) TestRunOnceLockError() {
	locker := &mockLocker{}
	locker.On("Acquire", mock.Anything, mock.Anything, mock.Anything).Return(nil, errs.New("redis down"))

	_, err := s.scheduler(locker, 10).RunOnce(context.Background())

	s.Error(err)
}

func (s *ReminderSchedulerTestSuite) TestRunOnceReleasesLockOnFailure() {
	lease := &mockLease{}
	lease.On("Release", mock.Anything).Return(nil).Once()
	locker := &mockLocker{}
	locker.On("Acquire", mock.Anything, mock.Anything, mock.Anything).Return(lease, nil)

	bs := s.due(1)
	s.bookings.EXPECT().ListRemindable(gomock.Any(), gomock.Any(), s.tomorrow, int32(10)).Return(bs, nil)
	s.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errs.New("insert failed"))

	n, err := s.scheduler(locker, 10).RunOnce(context.Background())

	s.Error(err)
	s.Zero(n)
	lease.AssertExpectations(s.T())
}
