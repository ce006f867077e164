package booking

import "gaming-zone-booking/internal/pkg/errs"

var (
	ErrSlotUnavailable          = errs.New("slot is not available")
	ErrCancellationWindowClosed = errs.New("cancellation window has closed")
	ErrBookingNotFound          = errs.New("booking not found")
	ErrConflict                 = errs.New("booking was modified concurrently")
	ErrInvalidTransition        = errs.New("invalid status transition")
	ErrNotOwner                 = errs.New("booking belongs to another user")
	ErrAdminOnly                = errs.New("operation requires admin role")

	ErrInvalidSlot          = errs.New("time slot must be formatted as HH:00")
	ErrSlotOutsideGrid      = errs.New("time slot is outside operating hours")
	ErrInvalidGrid          = errs.New("invalid operating hours")
	ErrInvalidDate          = errs.New("date must be formatted as YYYY-MM-DD")
	ErrBeyondHorizon        = errs.New("date is beyond the booking horizon")
	ErrInvalidDuration      = errs.New("duration is out of range")
	ErrInvalidQuantity      = errs.New("quantity must not be negative")
	ErrInvalidUnitPrice     = errs.New("unit price must not be negative")
	ErrInvalidHourlyRate    = errs.New("hourly rate must be greater than zero")
	ErrInvalidPaymentMethod = errs.New("payment method must be online or cash")
	ErrInvalidPaymentStatus = errs.New("payment status must be paid or pending")
	ErrInvalidStatus        = errs.New("invalid booking status")
	ErrInvalidInitialStatus = errs.New("bookings can only start as pending or confirmed")
	ErrGameNotAtVenue       = errs.New("game does not belong to the venue")
	ErrCafeItemUnavailable  = errs.New("cafe item is not available at this venue")
	ErrTotalsMismatch       = errs.New("booking totals do not match their components")
)
