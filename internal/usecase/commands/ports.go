package commands

import (
	"context"

	"gaming-zone-booking/internal/domain/booking"
	"gaming-zone-booking/internal/domain/user"

	"github.com/google/uuid"
)

// SlotCacheInvalidator drops cached occupancy after a booking write.
type SlotCacheInvalidator interface {
	Invalidate(ctx context.Context, gameID uuid.UUID, date booking.Date) error
}

// BookingRecorder counts lifecycle outcomes.
type BookingRecorder interface {
	RecordBooking(operation, outcome string)
}

type TokenIssuer interface {
	GenerateToken(actor user.Actor) (string, error)
}

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) error
}
