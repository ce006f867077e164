package catalog

import "gaming-zone-booking/internal/pkg/errs"

var (
	ErrVenueNotFound     = errs.New("venue not found")
	ErrGameNotFound      = errs.New("game not found")
	ErrCafeItemNotFound  = errs.New("cafe item not found")
	ErrInvalidName       = errs.New("name is required")
	ErrInvalidCity       = errs.New("city is required")
	ErrInvalidAddress    = errs.New("address is required")
	ErrInvalidHourlyRate = errs.New("price per hour must be greater than zero")
	ErrInvalidPrice      = errs.New("price must not be negative")
	ErrInvalidRating     = errs.New("rating must be between 0 and 5")
	ErrInvalidCategory   = errs.New("invalid cafe item category")
)
