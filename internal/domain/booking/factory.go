package booking

import (
	"gaming-zone-booking/internal/domain/user"
	"gaming-zone-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

// Policy holds the configurable booking rules.
type Policy struct {
	MaxDuration  int
	AdvanceDays  int // 0 disables the horizon
	Cancellation CancellationPolicy
}

type Services struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
	Availability    *AvailabilityEngine
	Policy          Policy
}

type CreateSpec struct {
	Actor         user.Actor
	Customer      UserSnapshot
	Game          GameSnapshot
	Venue         VenueSnapshot
	Date          Date
	Slot          Slot
	DurationHours int
	CafeLines     []CafeLine
	Payment       Payment
	InitialStatus Status
}

// NewBooking validates the request against the current occupancy and returns
// a fully priced booking; occupied must come straight from storage.
func NewBooking(s *Services, spec CreateSpec, occupied []string) (*Booking, error) {
	now := s.Clock.Now()

	status, err := initialStatus(spec.Actor, spec.InitialStatus)
	if err != nil {
		return nil, err
	}
	if !s.Availability.Grid().Contains(spec.Slot) {
		return nil, ErrSlotOutsideGrid
	}
	if err := s.Policy.CheckHorizon(s.Availability.Today(now), spec.Date); err != nil {
		return nil, err
	}
	if !s.Availability.IsBookable(spec.Date, spec.Slot, occupied, now) {
		return nil, ErrSlotUnavailable
	}

	quote, err := s.PriceCalculator.Calculate(spec.Game.HourlyRate, spec.DurationHours, spec.CafeLines)
	if err != nil {
		return nil, err
	}

	return &Booking{
		id:            uuid.New(),
		user:          spec.Customer,
		game:          spec.Game,
		venue:         spec.Venue,
		date:          spec.Date,
		slot:          spec.Slot,
		durationHours: quote.DurationHours,
		cafeLines:     quote.CafeLines,
		gameTotal:     quote.GameTotal,
		cafeTotal:     quote.CafeTotal,
		total:         quote.Total,
		payment:       spec.Payment,
		status:        status,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// CheckHorizon allows today through today+AdvanceDays-1.
func (p Policy) CheckHorizon(today, date Date) error {
	if p.AdvanceDays <= 0 {
		return nil
	}
	if date.After(today.AddDays(p.AdvanceDays - 1)) {
		return ErrBeyondHorizon
	}
	return nil
}

func initialStatus(actor user.Actor, requested Status) (Status, error) {
	switch requested {
	case "", StatusConfirmed:
		return StatusConfirmed, nil
	case StatusPending:
		if !actor.IsAdmin() {
			return "", ErrAdminOnly
		}
		return StatusPending, nil
	default:
		return "", ErrInvalidInitialStatus
	}
}

func DefaultPolicy() Policy {
	return Policy{
		MaxDuration:  4,
		AdvanceDays:  7,
		Cancellation: NewCancellationPolicy(DefaultCancellationCutoff),
	}
}

