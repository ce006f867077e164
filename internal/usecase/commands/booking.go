package commands

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"gaming-zone-booking/internal/domain/booking"
	"gaming-zone-booking/internal/domain/catalog"
	"gaming-zone-booking/internal/domain/notification"
	"gaming-zone-booking/internal/domain/user"
	"gaming-zone-booking/internal/infra"
	"gaming-zone-booking/internal/pkg/errs"
	"gaming-zone-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	OpCreate       = "create"
	OpCancel       = "cancel"
	OpChangeStatus = "change_status"
)

type CafeSelection struct {
	ItemID   uuid.UUID
	Quantity int
}

type CreateBookingInput struct {
	// UserID books on behalf of another account; admin only.
	UserID        *uuid.UUID
	GameID        uuid.UUID
	VenueID       uuid.UUID
	Date          string
	TimeSlot      string
	DurationHours int
	CafeItems     []CafeSelection
	PaymentMethod string
	PaymentStatus string
	Status        string
}

type ChangeStatusInput struct {
	Status  string
	Version *int
}

type BookingCommands interface {
	Create(ctx context.Context, actor user.Actor, in CreateBookingInput) (*booking.Booking, error)
	Cancel(ctx context.Context, actor user.Actor, bookingID uuid.UUID) (*booking.Booking, error)
	ChangeStatus(ctx context.Context, actor user.Actor, bookingID uuid.UUID, in ChangeStatusInput) (*booking.Booking, error)
}

type bookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	services *booking.Services
	cache    SlotCacheInvalidator
	recorder BookingRecorder
	logger   *slog.Logger
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	services *booking.Services,
	cache SlotCacheInvalidator,
	recorder BookingRecorder,
	logger *slog.Logger,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:      uow,
		services: services,
		cache:    cache,
		recorder: recorder,
		logger:   logger,
	}
}

func (uc *bookingUseCaseImpl) Create(ctx context.Context, actor user.Actor, in CreateBookingInput) (b *booking.Booking, err error) {
	defer func() { uc.recorder.RecordBooking(OpCreate, Outcome(err)) }()

	spec, err := uc.buildSpec(ctx, actor, in)
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Always recheck against storage; the read-path cache may be stale.
		occupied, rerr := tx.Reads().ActiveSlots(ctx, spec.Game.ID, spec.Date)
		if rerr != nil {
			return rerr
		}
		created, derr := booking.NewBooking(uc.services, spec, occupied)
		if derr != nil {
			return derr
		}
		if cerr := tx.Bookings().Create(ctx, tx.DB(), created); cerr != nil {
			if infra.IsKind(cerr, infra.KindDuplicateKey) {
				return booking.ErrSlotUnavailable
			}
			return cerr
		}
		if created.Status() == booking.StatusConfirmed {
			if nerr := shared.EnqueueNotification(ctx, tx, notification.KindConfirmation, created, created.CreatedAt()); nerr != nil {
				return nerr
			}
		}
		b = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.invalidate(ctx, b)
	uc.logger.Info("booking created",
		"booking_id", b.ID(),
		"user_id", b.User().ID,
		"game_id", b.Game().ID,
		"date", b.Date().String(),
		"slot", b.Slot().String(),
		"status", b.Status())
	return b, nil
}

func (uc *bookingUseCaseImpl) Cancel(ctx context.Context, actor user.Actor, bookingID uuid.UUID) (b *booking.Booking, err error) {
	defer func() { uc.recorder.RecordBooking(OpCancel, Outcome(err)) }()

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, lerr := loadBooking(ctx, tx.Reads(), bookingID)
		if lerr != nil {
			return lerr
		}
		guard := current.Version()
		now := uc.services.Clock.Now()
		if derr := current.Cancel(actor, uc.services.Policy.Cancellation, uc.services.Availability.Location(), now); derr != nil {
			return derr
		}
		if uerr := uc.persistStatus(ctx, tx, current, guard); uerr != nil {
			return uerr
		}
		if nerr := shared.EnqueueNotification(ctx, tx, notification.KindCancellation, current, now); nerr != nil {
			return nerr
		}
		b = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.invalidate(ctx, b)
	uc.logger.Info("booking cancelled", "booking_id", b.ID(), "actor_id", actor.UserID, "actor_role", actor.Role)
	return b, nil
}

func (uc *bookingUseCaseImpl) ChangeStatus(ctx context.Context, actor user.Actor, bookingID uuid.UUID, in ChangeStatusInput) (b *booking.Booking, err error) {
	defer func() { uc.recorder.RecordBooking(OpChangeStatus, Outcome(err)) }()

	if !actor.IsAdmin() {
		return nil, booking.ErrAdminOnly
	}
	to, err := booking.NewStatus(in.Status)
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, lerr := loadBooking(ctx, tx.Reads(), bookingID)
		if lerr != nil {
			return lerr
		}
		if in.Version != nil && *in.Version != current.Version() {
			return booking.ErrConflict
		}
		guard := current.Version()
		from := current.Status()
		now := uc.services.Clock.Now()
		if derr := current.ChangeStatus(actor, to, now); derr != nil {
			return derr
		}
		if uerr := uc.persistStatus(ctx, tx, current, guard); uerr != nil {
			return uerr
		}
		if kind, ok := notificationFor(from, to); ok {
			if nerr := shared.EnqueueNotification(ctx, tx, kind, current, now); nerr != nil {
				return nerr
			}
		}
		b = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.invalidate(ctx, b)
	uc.logger.Info("booking status changed", "booking_id", b.ID(), "status", b.Status(), "version", b.Version())
	return b, nil
}

func (uc *bookingUseCaseImpl) buildSpec(ctx context.Context, actor user.Actor, in CreateBookingInput) (booking.CreateSpec, error) {
	date, err := booking.ParseDate(in.Date)
	if err != nil {
		return booking.CreateSpec{}, err
	}
	slot, err := booking.ParseSlot(in.TimeSlot)
	if err != nil {
		return booking.CreateSpec{}, err
	}
	if in.PaymentStatus != "" && !actor.IsAdmin() {
		return booking.CreateSpec{}, booking.ErrAdminOnly
	}
	payment, err := booking.NewPayment(in.PaymentMethod, in.PaymentStatus)
	if err != nil {
		return booking.CreateSpec{}, err
	}
	var initial booking.Status
	if in.Status != "" {
		if initial, err = booking.NewStatus(in.Status); err != nil {
			return booking.CreateSpec{}, err
		}
	}

	customer, err := uc.resolveCustomer(ctx, actor, in.UserID)
	if err != nil {
		return booking.CreateSpec{}, err
	}

	reads := uc.uow.CommandReads()
	game, err := reads.GameByID(ctx, in.GameID)
	if err != nil {
		return booking.CreateSpec{}, notFoundAs(err, catalog.ErrGameNotFound)
	}
	venue, err := reads.VenueByID(ctx, in.VenueID)
	if err != nil {
		return booking.CreateSpec{}, notFoundAs(err, catalog.ErrVenueNotFound)
	}
	if !game.BelongsTo(venue.ID()) {
		return booking.CreateSpec{}, booking.ErrGameNotAtVenue
	}

	lines, err := uc.cafeLines(ctx, venue.ID(), in.CafeItems)
	if err != nil {
		return booking.CreateSpec{}, err
	}

	return booking.CreateSpec{
		Actor:    actor,
		Customer: customer,
		Game: booking.GameSnapshot{
			ID:         game.ID(),
			Name:       game.Name(),
			HourlyRate: game.PricePerHour(),
		},
		Venue: booking.VenueSnapshot{
			ID:      venue.ID(),
			Name:    venue.Name(),
			Address: venue.FullAddress(),
		},
		Date:          date,
		Slot:          slot,
		DurationHours: in.DurationHours,
		CafeLines:     lines,
		Payment:       payment,
		InitialStatus: initial,
	}, nil
}

func (uc *bookingUseCaseImpl) resolveCustomer(ctx context.Context, actor user.Actor, onBehalfOf *uuid.UUID) (booking.UserSnapshot, error) {
	if onBehalfOf == nil || *onBehalfOf == actor.UserID {
		return booking.UserSnapshot{ID: actor.UserID, Name: actor.Name, Email: actor.Email}, nil
	}
	if !actor.IsAdmin() {
		return booking.UserSnapshot{}, booking.ErrAdminOnly
	}
	u, err := uc.uow.CommandReads().UserByID(ctx, *onBehalfOf)
	if err != nil {
		return booking.UserSnapshot{}, notFoundAs(err, user.ErrUserNotFound)
	}
	return booking.UserSnapshot{ID: u.ID(), Name: u.Name(), Email: u.Email().Value()}, nil
}

// cafeLines resolves selections to priced lines. Zero quantities are skipped
// here and negative ones are left for the calculator to reject.
func (uc *bookingUseCaseImpl) cafeLines(ctx context.Context, venueID uuid.UUID, selections []CafeSelection) ([]booking.CafeLine, error) {
	ids := make([]uuid.UUID, 0, len(selections))
	for _, s := range selections {
		if s.Quantity != 0 && !slices.Contains(ids, s.ItemID) {
			ids = append(ids, s.ItemID)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}

	items, err := uc.uow.CommandReads().CafeItemsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*catalog.CafeItem, len(items))
	for _, item := range items {
		byID[item.ID()] = item
	}

	lines := make([]booking.CafeLine, 0, len(selections))
	for _, s := range selections {
		if s.Quantity == 0 {
			continue
		}
		item, ok := byID[s.ItemID]
		if !ok {
			return nil, catalog.ErrCafeItemNotFound
		}
		if !item.Orderable(venueID) {
			return nil, booking.ErrCafeItemUnavailable
		}
		lines = append(lines, booking.CafeLine{
			ItemID:    item.ID(),
			Name:      item.Name(),
			UnitPrice: item.Price(),
			Quantity:  s.Quantity,
		})
	}
	return lines, nil
}

func (uc *bookingUseCaseImpl) persistStatus(ctx context.Context, tx shared.Tx, b *booking.Booking, guard int) error {
	err := tx.Bookings().UpdateStatus(ctx, tx.DB(), b, guard)
	if infra.IsKind(err, infra.KindConflict) {
		return booking.ErrConflict
	}
	return err
}

// invalidate failures only cost a stale read until the TTL expires.
func (uc *bookingUseCaseImpl) invalidate(ctx context.Context, b *booking.Booking) {
	if err := uc.cache.Invalidate(ctx, b.Game().ID, b.Date()); err != nil {
		uc.logger.Warn("failed to invalidate availability cache",
			"game_id", b.Game().ID,
			"date", b.Date().String(),
			"error", err.Error())
	}
}

func loadBooking(ctx context.Context, reads shared.CommandReads, id uuid.UUID) (*booking.Booking, error) {
	b, err := reads.BookingByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, booking.ErrBookingNotFound)
	}
	return b, nil
}

func notificationFor(from, to booking.Status) (notification.Kind, bool) {
	switch {
	case to == booking.StatusCancelled:
		return notification.KindCancellation, true
	case from == booking.StatusPending && to == booking.StatusConfirmed:
		return notification.KindConfirmation, true
	default:
		return "", false
	}
}

func notFoundAs(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return sentinel
	}
	return err
}

// Outcome buckets a lifecycle error into a metrics label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, booking.ErrSlotUnavailable):
		return "slot_unavailable"
	case errors.Is(err, booking.ErrConflict):
		return "conflict"
	case errors.Is(err, booking.ErrCancellationWindowClosed):
		return "window_closed"
	case errs.Is(err, shared.ErrMaxRetriesExceeded):
		return "retries_exhausted"
	case infra.IsKind(err, infra.KindDBFailure):
		return "error"
	default:
		return "rejected"
	}
}
