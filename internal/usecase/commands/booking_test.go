//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"gaming-zone-booking/internal/domain/booking"
	"gaming-zone-booking/internal/domain/catalog"
	"gaming-zone-booking/internal/domain/user"
	"gaming-zone-booking/internal/infra"
	"gaming-zone-booking/internal/pkg/clock"
	"gaming-zone-booking/internal/usecase/commands"
	"gaming-zone-booking/internal/usecase/shared"
	"gaming-zone-booking/tests/common/builder"
	commandsmock "gaming-zone-booking/tests/mock/commands"
	sharedmock "gaming-zone-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	bookings      *sharedmock.MockBookingRepository
	notifications *sharedmock.MockNotificationRepository
	cache         *commandsmock.MockSlotCacheInvalidator
	recorder      *commandsmock.MockBookingRecorder
	clock         *clock.MockClock
	uc            commands.BookingCommands

	venue *catalog.Venue
	game  *catalog.Game
	item  *catalog.CafeItem
	owner *builder.UserBuilder
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.bookings = sharedmock.NewMockBookingRepository(s.ctrl)
	s.notifications = sharedmock.NewMockNotificationRepository(s.ctrl)
	s.cache = commandsmock.NewMockSlotCacheInvalidator(s.ctrl)
	s.recorder = commandsmock.NewMockBookingRecorder(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC))

	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()
	s.uow.EXPECT().CommandReads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().Reads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().Bookings().Return(s.bookings).AnyTimes()
	s.tx.EXPECT().Notifications().Return(s.notifications).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()

	grid, _ := booking.NewGrid(10, 24)
	services := &booking.Services{
		Clock:           s.clock,
		PriceCalculator: booking.NewDefaultPriceCalculator(4),
		Availability:    booking.NewAvailabilityEngine(grid, time.UTC),
		Policy:          booking.DefaultPolicy(),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.uc = commands.NewBookingUseCase(s.uow, services, s.cache, s.recorder, logger)

	vb := builder.NewVenueBuilder()
	s.venue = vb.BuildDomain()
	s.game = builder.NewGameBuilder().AtVenue(vb.ID).BuildDomain()
	s.item = builder.NewCafeItemBuilder().AtVenue(vb.ID).BuildDomain()
	s.owner = builder.NewUserBuilder()
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) createInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		GameID:        s.game.ID(),
		VenueID:       s.venue.ID(),
		Date:          "2026-03-10",
		TimeSlot:      "18:00",
		DurationHours: 2,
		CafeItems:     []commands.CafeSelection{{ItemID: s.item.ID(), Quantity: 2}},
		PaymentMethod: "online",
	}
}

func (s *BookingCommandsTestSuite) expectCatalog() {
	s.reads.EXPECT().GameByID(gomock.Any(), s.game.ID()).Return(s.game, nil)
	s.reads.EXPECT().VenueByID(gomock.Any(), s.venue.ID()).Return(s.venue, nil)
	s.reads.EXPECT().CafeItemsByIDs(gomock.Any(), []uuid.UUID{s.item.ID()}).Return([]*catalog.CafeItem{s.item}, nil)
}

func (s *BookingCommandsTestSuite) TestCreate() {
	ctx := context.Background()
	actor := s.owner.BuildActor()

	s.Run("success: persists snapshot, enqueues confirmation and invalidates cache", func() {
		s.expectCatalog()
		s.reads.EXPECT().ActiveSlots(gomock.Any(), s.game.ID(), gomock.Any()).Return([]string{"17:00"}, nil)
		s.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), "email", "confirmation", gomock.Any(), s.clock.Now()).Return(nil)
		s.cache.EXPECT().Invalidate(gomock.Any(), s.game.ID(), gomock.Any()).Return(nil)
		s.recorder.EXPECT().RecordBooking(commands.OpCreate, "ok")

		b, err := s.uc.Create(ctx, actor, s.createInput())

		s.Require().NoError(err)
		s.Equal(actor.UserID, b.User().ID)
		s.Equal(s.venue.FullAddress(), b.Venue().Address)
		s.Equal(int64(600), b.GameTotal())
		s.Equal(int64(240), b.CafeTotal())
		s.Equal(booking.StatusConfirmed, b.Status())
		s.Equal(booking.PaymentPaid, b.Payment().Status)
	})

	s.Run("error: concurrent insert wins the slot", func() {
		s.expectCatalog()
		s.reads.EXPECT().ActiveSlots(gomock.Any(), s.game.ID(), gomock.Any()).Return(nil, nil)
		s.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("dup", nil, infra.KindDuplicateKey))
		s.recorder.EXPECT().RecordBooking(commands.OpCreate, "slot_unavailable")

		_, err := s.uc.Create(ctx, actor, s.createInput())

		s.ErrorIs(err, booking.ErrSlotUnavailable)
	})

	s.Run("error: storage already holds the slot", func() {
		s.expectCatalog()
		s.reads.EXPECT().ActiveSlots(gomock.Any(), s.game.ID(), gomock.Any()).Return([]string{"18:00"}, nil)
		s.recorder.EXPECT().RecordBooking(commands.OpCreate, "slot_unavailable")

		_, err := s.uc.Create(ctx, actor, s.createInput())

		s.ErrorIs(err, booking.ErrSlotUnavailable)
	})

	s.Run("error: unknown game", func() {
		s.reads.EXPECT().GameByID(gomock.Any(), s.game.ID()).
			Return(nil, infra.WrapRepoErr("missing", nil, infra.KindNotFound))
		s.recorder.EXPECT().RecordBooking(commands.OpCreate, "rejected")

		_, err := s.uc.Create(ctx, actor, s.createInput())

		s.ErrorIs(err, catalog.ErrGameNotFound)
	})

	s.Run("error: game belongs to another venue", func() {
		other := builder.NewGameBuilder().BuildDomain()
		in := s.createInput()
		in.GameID = other.ID()
		s.reads.EXPECT().GameByID(gomock.Any(), other.ID()).Return(other, nil)
		s.reads.EXPECT().VenueByID(gomock.Any(), s.venue.ID()).Return(s.venue, nil)
		s.recorder.EXPECT().RecordBooking(commands.OpCreate, "rejected")

		_, err := s.uc.Create(ctx, actor, in)

		s.ErrorIs(err, booking.ErrGameNotAtVenue)
	})

	s.Run("error: cafe item switched off", func() {
		off := builder.NewCafeItemBuilder().AtVenue(s.venue.ID()).Unavailable().BuildDomain()
		in := s.createInput()
		in.CafeItems = []commands.CafeSelection{{ItemID: off.ID(), Quantity: 1}}
		s.reads.EXPECT().GameByID(gomock.Any(), s.game.ID()).Return(s.game, nil)
		s.reads.EXPECT().VenueByID(gomock.Any(), s.venue.ID()).Return(s.venue, nil)
		s.reads.EXPECT().CafeItemsByIDs(gomock.Any(), []uuid.UUID{off.ID()}).Return([]*catalog.CafeItem{off}, nil)
		s.recorder.EXPECT().RecordBooking(commands.OpCreate, "rejected")

		_, err := s.uc.Create(ctx, actor, in)

		s.ErrorIs(err, booking.ErrCafeItemUnavailable)
	})

	s.Run("error: user books for someone else", func() {
		other := uuid.New()
		in := s.createInput()
		in.UserID = &other
		s.recorder.EXPECT().RecordBooking(commands.OpCreate, "rejected")

		_, err := s.uc.Create(ctx, actor, in)

		s.ErrorIs(err, booking.ErrAdminOnly)
	})

	s.Run("error: player cannot choose the payment outcome", func() {
		in := s.createInput()
		in.PaymentMethod = "cash"
		in.PaymentStatus = "paid"
		s.recorder.EXPECT().RecordBooking(commands.OpCreate, "rejected")

		_, err := s.uc.Create(ctx, actor, in)

		s.ErrorIs(err, booking.ErrAdminOnly)
	})

	s.Run("success: cash booking by a player waits for payment", func() {
		in := s.createInput()
		in.PaymentMethod = "cash"
		s.expectCatalog()
		s.reads.EXPECT().ActiveSlots(gomock.Any(), s.game.ID(), gomock.Any()).Return(nil, nil)
		s.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), "email", "confirmation", gomock.Any(), s.clock.Now()).Return(nil)
		s.cache.EXPECT().Invalidate(gomock.Any(), s.game.ID(), gomock.Any()).Return(nil)
		s.recorder.EXPECT().RecordBooking(commands.OpCreate, "ok")

		b, err := s.uc.Create(ctx, actor, in)

		s.Require().NoError(err)
		s.Equal(booking.PaymentPending, b.Payment().Status)
	})

	s.Run("error: malformed slot label", func() {
		in := s.createInput()
		in.TimeSlot = "18:30"
		s.recorder.EXPECT().RecordBooking(commands.OpCreate, "rejected")

		_, err := s.uc.Create(ctx, actor, in)

		s.ErrorIs(err, booking.ErrInvalidSlot)
	})

	s.Run("success: admin books pending for a customer without notifying", func() {
		admin := builder.NewUserBuilder().AsAdmin().BuildActor()
		customer := builder.NewUserBuilder().WithEmail("customer@example.com").BuildStored()
		in := s.createInput()
		id := customer.ID()
		in.UserID = &id
		in.Status = "pending"
		in.PaymentMethod = "cash"

		s.reads.EXPECT().UserByID(gomock.Any(), id).Return(customer, nil)
		s.expectCatalog()
		s.reads.EXPECT().ActiveSlots(gomock.Any(), s.game.ID(), gomock.Any()).Return(nil, nil)
		s.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.cache.EXPECT().Invalidate(gomock.Any(), s.game.ID(), gomock.Any()).Return(nil)
		s.recorder.EXPECT().RecordBooking(commands.OpCreate, "ok")

		b, err := s.uc.Create(ctx, admin, in)

		s.Require().NoError(err)
		s.Equal(id, b.User().ID)
		s.Equal("customer@example.com", b.User().Email)
		s.Equal(booking.StatusPending, b.Status())
		s.Equal(booking.PaymentPending, b.Payment().Status)
	})

	s.Run("success: cache failure does not fail the booking", func() {
		s.expectCatalog()
		s.reads.EXPECT().ActiveSlots(gomock.Any(), s.game.ID(), gomock.Any()).Return(nil, nil)
		s.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.cache.EXPECT().Invalidate(gomock.Any(), gomock.Any(), gomock.Any()).Return(assertErr)
		s.recorder.EXPECT().RecordBooking(commands.OpCreate, "ok")

		_, err := s.uc.Create(ctx, actor, s.createInput())

		s.NoError(err)
	})
}

func (s *BookingCommandsTestSuite) TestCancel() {
	ctx := context.Background()

	s.Run("success: owner cancels ahead of cutoff", func() {
		b := builder.NewBookingBuilder().WithOwner(s.owner.ID).BuildDomain()
		s.reads.EXPECT().BookingByID(gomock.Any(), b.ID()).Return(b, nil)
		s.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), b, 1).Return(nil)
		s.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), "email", "cancellation", gomock.Any(), s.clock.Now()).Return(nil)
		s.cache.EXPECT().Invalidate(gomock.Any(), b.Game().ID, b.Date()).Return(nil)
		s.recorder.EXPECT().RecordBooking(commands.OpCancel, "ok")

		got, err := s.uc.Cancel(ctx, s.owner.BuildActor(), b.ID())

		s.Require().NoError(err)
		s.Equal(booking.StatusCancelled, got.Status())
		s.Equal(2, got.Version())
	})

	s.Run("error: exactly two hours before start", func() {
		b := builder.NewBookingBuilder().WithOwner(s.owner.ID).BuildDomain()
		s.clock.Set(time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC))
		defer s.clock.Set(time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC))
		s.reads.EXPECT().BookingByID(gomock.Any(), b.ID()).Return(b, nil)
		s.recorder.EXPECT().RecordBooking(commands.OpCancel, "window_closed")

		_, err := s.uc.Cancel(ctx, s.owner.BuildActor(), b.ID())

		s.ErrorIs(err, booking.ErrCancellationWindowClosed)
	})

	s.Run("success: admin cancels inside cutoff", func() {
		b := builder.NewBookingBuilder().BuildDomain()
		s.clock.Set(time.Date(2026, 3, 10, 17, 30, 0, 0, time.UTC))
		defer s.clock.Set(time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC))
		s.reads.EXPECT().BookingByID(gomock.Any(), b.ID()).Return(b, nil)
		s.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), b, 1).Return(nil)
		s.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), "email", "cancellation", gomock.Any(), gomock.Any()).Return(nil)
		s.cache.EXPECT().Invalidate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.recorder.EXPECT().RecordBooking(commands.OpCancel, "ok")

		_, err := s.uc.Cancel(ctx, builder.NewUserBuilder().AsAdmin().BuildActor(), b.ID())

		s.NoError(err)
	})

	s.Run("error: version moved on", func() {
		b := builder.NewBookingBuilder().WithOwner(s.owner.ID).BuildDomain()
		s.reads.EXPECT().BookingByID(gomock.Any(), b.ID()).Return(b, nil)
		s.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), b, 1).
			Return(infra.WrapRepoErr("stale", nil, infra.KindConflict))
		s.recorder.EXPECT().RecordBooking(commands.OpCancel, "conflict")

		_, err := s.uc.Cancel(ctx, s.owner.BuildActor(), b.ID())

		s.ErrorIs(err, booking.ErrConflict)
	})

	s.Run("error: not the owner", func() {
		b := builder.NewBookingBuilder().BuildDomain()
		s.reads.EXPECT().BookingByID(gomock.Any(), b.ID()).Return(b, nil)
		s.recorder.EXPECT().RecordBooking(commands.OpCancel, "rejected")

		_, err := s.uc.Cancel(ctx, s.owner.BuildActor(), b.ID())

		s.ErrorIs(err, booking.ErrNotOwner)
	})

	s.Run("error: unknown booking", func() {
		id := uuid.New()
		s.reads.EXPECT().BookingByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("missing", nil, infra.KindNotFound))
		s.recorder.EXPECT().RecordBooking(commands.OpCancel, "rejected")

		_, err := s.uc.Cancel(ctx, s.owner.BuildActor(), id)

		s.ErrorIs(err, booking.ErrBookingNotFound)
	})
}

func (s *BookingCommandsTestSuite) TestChangeStatus() {
	ctx := context.Background()
	admin := builder.NewUserBuilder().AsAdmin().BuildActor()

	s.Run("success: pending to confirmed notifies the customer", func() {
		b := builder.NewBookingBuilder().WithStatus("pending").BuildDomain()
		s.reads.EXPECT().BookingByID(gomock.Any(), b.ID()).Return(b, nil)
		s.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), b, 1).Return(nil)
		s.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), "email", "confirmation", gomock.Any(), gomock.Any()).Return(nil)
		s.cache.EXPECT().Invalidate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.recorder.EXPECT().RecordBooking(commands.OpChangeStatus, "ok")

		got, err := s.uc.ChangeStatus(ctx, admin, b.ID(), commands.ChangeStatusInput{Status: "confirmed"})

		s.Require().NoError(err)
		s.Equal(booking.StatusConfirmed, got.Status())
	})

	s.Run("success: completing sends nothing", func() {
		b := builder.NewBookingBuilder().BuildDomain()
		version := 1
		s.reads.EXPECT().BookingByID(gomock.Any(), b.ID()).Return(b, nil)
		s.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), b, 1).Return(nil)
		s.cache.EXPECT().Invalidate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.recorder.EXPECT().RecordBooking(commands.OpChangeStatus, "ok")

		got, err := s.uc.ChangeStatus(ctx, admin, b.ID(), commands.ChangeStatusInput{Status: "completed", Version: &version})

		s.Require().NoError(err)
		s.Equal(booking.StatusCompleted, got.Status())
		s.Equal(2, got.Version())
	})

	s.Run("error: stale version supplied", func() {
		b := builder.NewBookingBuilder().BuildDomain()
		stale := 3
		s.reads.EXPECT().BookingByID(gomock.Any(), b.ID()).Return(b, nil)
		s.recorder.EXPECT().RecordBooking(commands.OpChangeStatus, "conflict")

		_, err := s.uc.ChangeStatus(ctx, admin, b.ID(), commands.ChangeStatusInput{Status: "completed", Version: &stale})

		s.ErrorIs(err, booking.ErrConflict)
	})

	s.Run("error: illegal transition", func() {
		b := builder.NewBookingBuilder().WithStatus("completed").BuildDomain()
		s.reads.EXPECT().BookingByID(gomock.Any(), b.ID()).Return(b, nil)
		s.recorder.EXPECT().RecordBooking(commands.OpChangeStatus, "rejected")

		_, err := s.uc.ChangeStatus(ctx, admin, b.ID(), commands.ChangeStatusInput{Status: "cancelled"})

		s.ErrorIs(err, booking.ErrInvalidTransition)
	})

	s.Run("error: regular user", func() {
		s.recorder.EXPECT().RecordBooking(commands.OpChangeStatus, "rejected")

		_, err := s.uc.ChangeStatus(ctx, user.Actor{UserID: uuid.New(), Role: user.RoleUser}, uuid.New(), commands.ChangeStatusInput{Status: "completed"})

		s.ErrorIs(err, booking.ErrAdminOnly)
	})
}
