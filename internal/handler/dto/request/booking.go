package request

import (
	"gaming-zone-booking/internal/domain/booking"
	"gaming-zone-booking/internal/usecase/commands"
	"gaming-zone-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CafeItemSelection struct {
	ItemID   uuid.UUID `json:"itemId" binding:"required"`
	Quantity int       `json:"quantity" binding:"min=0,max=50"`
}

type QuoteRequest struct {
	GameID    uuid.UUID           `json:"gameId" binding:"required"`
	Duration  int                 `json:"duration" binding:"required,min=1"`
	CafeItems []CafeItemSelection `json:"cafeItems" binding:"omitempty,dive"`
}

func (r *QuoteRequest) ToInput() queries.QuoteInput {
	items := make([]queries.QuoteItem, len(r.CafeItems))
	for i, sel := range r.CafeItems {
		items[i] = queries.QuoteItem{ItemID: sel.ItemID, Quantity: sel.Quantity}
	}
	return queries.QuoteInput{
		GameID:        r.GameID,
		DurationHours: r.Duration,
		CafeItems:     items,
	}
}

type CreateBookingRequest struct {
	GameID        uuid.UUID           `json:"gameId" binding:"required"`
	VenueID       uuid.UUID           `json:"venueId" binding:"required"`
	Date          string              `json:"date" binding:"required,isodate"`
	TimeSlot      string              `json:"timeSlot" binding:"required,slot"`
	Duration      int                 `json:"duration" binding:"required,min=1"`
	CafeItems     []CafeItemSelection `json:"cafeItems" binding:"omitempty,dive"`
	PaymentMethod string              `json:"paymentMethod" binding:"required,oneof=online cash"`
}

func (r *CreateBookingRequest) ToInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		GameID:        r.GameID,
		VenueID:       r.VenueID,
		Date:          r.Date,
		TimeSlot:      r.TimeSlot,
		DurationHours: r.Duration,
		CafeItems:     selections(r.CafeItems),
		PaymentMethod: r.PaymentMethod,
	}
}

// AdminCreateBookingRequest books for another user and may start as pending.
// Only here can the payment outcome be set explicitly; players get the one
// their payment method implies.
type AdminCreateBookingRequest struct {
	CreateBookingRequest
	UserID        uuid.UUID `json:"userId" binding:"required"`
	Status        string    `json:"status" binding:"omitempty,oneof=pending confirmed"`
	PaymentStatus string    `json:"paymentStatus" binding:"omitempty,oneof=paid pending"`
}

func (r *AdminCreateBookingRequest) ToInput() commands.CreateBookingInput {
	in := r.CreateBookingRequest.ToInput()
	userID := r.UserID
	in.UserID = &userID
	in.Status = r.Status
	in.PaymentStatus = r.PaymentStatus
	return in
}

type ChangeStatusRequest struct {
	Status  string `json:"status" binding:"required,oneof=pending confirmed cancelled completed"`
	Version *int   `json:"version" binding:"omitempty,min=1"`
}

func (r *ChangeStatusRequest) ToInput() commands.ChangeStatusInput {
	return commands.ChangeStatusInput{Status: r.Status, Version: r.Version}
}

type AdminBookingFilter struct {
	Status  string `form:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	GameID  string `form:"gameId" binding:"omitempty,uuid"`
	VenueID string `form:"venueId" binding:"omitempty,uuid"`
	Date    string `form:"date" binding:"omitempty,isodate"`
	Limit   int    `form:"limit" binding:"omitempty,min=1"`
	Offset  int    `form:"offset" binding:"omitempty,min=0"`
}

// ToFilter maps the query string onto the read-side filter.
func (f *AdminBookingFilter) ToFilter() (queries.BookingFilter, error) {
	out := queries.BookingFilter{Page: queries.Page{Limit: f.Limit, Offset: f.Offset}}
	if f.Status != "" {
		st, err := booking.NewStatus(f.Status)
		if err != nil {
			return out, err
		}
		out.Status = &st
	}
	if f.GameID != "" {
		id, err := uuid.Parse(f.GameID)
		if err != nil {
			return out, err
		}
		out.GameID = &id
	}
	if f.VenueID != "" {
		id, err := uuid.Parse(f.VenueID)
		if err != nil {
			return out, err
		}
		out.VenueID = &id
	}
	if f.Date != "" {
		d, err := booking.ParseDate(f.Date)
		if err != nil {
			return out, err
		}
		out.Date = &d
	}
	return out, nil
}

func selections(in []CafeItemSelection) []commands.CafeSelection {
	out := make([]commands.CafeSelection, len(in))
	for i, sel := range in {
		out[i] = commands.CafeSelection{ItemID: sel.ItemID, Quantity: sel.Quantity}
	}
	return out
}
