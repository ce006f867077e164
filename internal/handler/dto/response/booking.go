package response

import (
	"gaming-zone-booking/internal/domain/booking"
	"gaming-zone-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotResponse struct {
	TimeSlot  string `json:"timeSlot"`
	Available bool   `json:"available"`
}

type AvailabilityResponse struct {
	GameID uuid.UUID      `json:"gameId"`
	Date   string         `json:"date"`
	Slots  []SlotResponse `json:"slots"`
}

func FromAvailability(a *booking.Availability) *AvailabilityResponse {
	slots := make([]SlotResponse, len(a.Slots))
	for i, s := range a.Slots {
		slots[i] = SlotResponse{TimeSlot: s.Slot.String(), Available: s.Available}
	}
	return &AvailabilityResponse{GameID: a.GameID, Date: a.Date.String(), Slots: slots}
}

func FromBooking(b *booking.Booking) *queries.BookingView {
	return queries.BookingViewFrom(b)
}

type BookingListResponse struct {
	Bookings []*queries.BookingView `json:"bookings"`
	Count    int                    `json:"count"`
}

func FromBookingViews(views []*queries.BookingView) *BookingListResponse {
	if views == nil {
		views = []*queries.BookingView{}
	}
	return &BookingListResponse{Bookings: views, Count: len(views)}
}
