package booking

import (
	"slices"
	"time"

	"gaming-zone-booking/internal/domain/user"

	"github.com/google/uuid"
)

type Booking struct {
	id               uuid.UUID
	user             UserSnapshot
	game             GameSnapshot
	venue            VenueSnapshot
	date             Date
	slot             Slot
	durationHours    int
	cafeLines        []CafeLine
	gameTotal        int64
	cafeTotal        int64
	total            int64
	payment          Payment
	status           Status
	version          int
	createdAt        time.Time
	updatedAt        time.Time
	cancelledAt      *time.Time
	reminderQueuedAt *time.Time
}

// Record carries persisted booking state back into the domain.
type Record struct {
	ID               uuid.UUID
	User             UserSnapshot
	Game             GameSnapshot
	Venue            VenueSnapshot
	Date             Date
	Slot             Slot
	DurationHours    int
	CafeLines        []CafeLine
	GameTotal        int64
	CafeTotal        int64
	Total            int64
	Payment          Payment
	Status           Status
	Version          int
	CreatedAt        time.Time
	UpdatedAt        time.Time
	CancelledAt      *time.Time
	ReminderQueuedAt *time.Time
}

func Reconstruct(r Record) *Booking {
	return &Booking{
		id:               r.ID,
		user:             r.User,
		game:             r.Game,
		venue:            r.Venue,
		date:             r.Date,
		slot:             r.Slot,
		durationHours:    r.DurationHours,
		cafeLines:        slices.Clone(r.CafeLines),
		gameTotal:        r.GameTotal,
		cafeTotal:        r.CafeTotal,
		total:            r.Total,
		payment:          r.Payment,
		status:           r.Status,
		version:          r.Version,
		createdAt:        r.CreatedAt,
		updatedAt:        r.UpdatedAt,
		cancelledAt:      r.CancelledAt,
		reminderQueuedAt: r.ReminderQueuedAt,
	}
}

func (b *Booking) Record() Record {
	return Record{
		ID:               b.id,
		User:             b.user,
		Game:             b.game,
		Venue:            b.venue,
		Date:             b.date,
		Slot:             b.slot,
		DurationHours:    b.durationHours,
		CafeLines:        slices.Clone(b.cafeLines),
		GameTotal:        b.gameTotal,
		CafeTotal:        b.cafeTotal,
		Total:            b.total,
		Payment:          b.payment,
		Status:           b.status,
		Version:          b.version,
		CreatedAt:        b.createdAt,
		UpdatedAt:        b.updatedAt,
		CancelledAt:      b.cancelledAt,
		ReminderQueuedAt: b.reminderQueuedAt,
	}
}

// ChangeStatus applies an admin-driven transition.
func (b *Booking) ChangeStatus(actor user.Actor, to Status, now time.Time) error {
	if !actor.IsAdmin() {
		return ErrAdminOnly
	}
	if !to.IsValid() {
		return ErrInvalidStatus
	}
	if !b.status.CanTransitionTo(to) {
		return ErrInvalidTransition
	}
	b.apply(to, now)
	return nil
}

// Cancel lets owners cancel confirmed bookings before the cutoff; admins may
// cancel any active booking at any time.
func (b *Booking) Cancel(actor user.Actor, policy CancellationPolicy, loc *time.Location, now time.Time) error {
	if actor.IsAdmin() {
		if !b.status.CanTransitionTo(StatusCancelled) {
			return ErrInvalidTransition
		}
		b.apply(StatusCancelled, now)
		return nil
	}

	if !actor.Owns(b.user.ID) {
		return ErrNotOwner
	}
	if b.status != StatusConfirmed {
		return ErrInvalidTransition
	}
	if !policy.AllowsUserCancel(b.SlotStart(loc), now) {
		return ErrCancellationWindowClosed
	}
	b.apply(StatusCancelled, now)
	return nil
}

func (b *Booking) apply(to Status, now time.Time) {
	b.status = to
	b.updatedAt = now
	b.version++
	if to == StatusCancelled {
		t := now
		b.cancelledAt = &t
	}
}

func (b *Booking) MarkReminderQueued(now time.Time) {
	t := now
	b.reminderQueuedAt = &t
}

// VerifyTotals recomputes the pricing snapshot and compares it to the stored totals.
func (b *Booking) VerifyTotals() error {
	gameTotal := b.game.HourlyRate * int64(b.durationHours)
	var cafeTotal int64
	for _, l := range b.cafeLines {
		cafeTotal += l.Subtotal()
	}
	if gameTotal != b.gameTotal || cafeTotal != b.cafeTotal || gameTotal+cafeTotal != b.total {
		return ErrTotalsMismatch
	}
	return nil
}

func (b *Booking) SlotStart(loc *time.Location) time.Time {
	return b.date.At(b.slot, loc)
}

func (b *Booking) VisibleTo(actor user.Actor) bool {
	return actor.IsAdmin() || actor.Owns(b.user.ID)
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) User() UserSnapshot           { return b.user }
func (b *Booking) Game() GameSnapshot           { return b.game }
func (b *Booking) Venue() VenueSnapshot         { return b.venue }
func (b *Booking) Date() Date                   { return b.date }
func (b *Booking) Slot() Slot                   { return b.slot }
func (b *Booking) DurationHours() int           { return b.durationHours }
func (b *Booking) CafeLines() []CafeLine        { return slices.Clone(b.cafeLines) }
func (b *Booking) GameTotal() int64             { return b.gameTotal }
func (b *Booking) CafeTotal() int64             { return b.cafeTotal }
func (b *Booking) Total() int64                 { return b.total }
func (b *Booking) Payment() Payment             { return b.payment }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) Version() int                 { return b.version }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }
func (b *Booking) CancelledAt() *time.Time      { return b.cancelledAt }
func (b *Booking) ReminderQueuedAt() *time.Time { return b.reminderQueuedAt }
