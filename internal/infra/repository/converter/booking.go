package converter

import (
	"encoding/json"
	"fmt"
	"math"

	"gaming-zone-booking/internal/domain/booking"
	sqlc "gaming-zone-booking/internal/infra/sqlc/generated"
	"gaming-zone-booking/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) (sqlc.CreateBookingParams, error) {
	lines := b.CafeLines()
	if lines == nil {
		lines = []booking.CafeLine{}
	}
	cafe, err := json.Marshal(lines)
	if err != nil {
		return sqlc.CreateBookingParams{}, fmt.Errorf("encode cafe items: %w", err)
	}
	duration := b.DurationHours()
	if duration > math.MaxInt32 || duration < 0 {
		return sqlc.CreateBookingParams{}, fmt.Errorf("duration out of int32 range: %d", duration)
	}

	u, g, v := b.User(), b.Game(), b.Venue()
	return sqlc.CreateBookingParams{
		ID:            b.ID(),
		UserID:        u.ID,
		UserName:      u.Name,
		UserEmail:     u.Email,
		GameID:        g.ID,
		GameName:      g.Name,
		HourlyRate:    g.HourlyRate,
		VenueID:       v.ID,
		VenueName:     v.Name,
		VenueAddress:  v.Address,
		BookingDate:   DateToPgtype(b.Date()),
		TimeSlot:      b.Slot().String(),
		DurationHours: int32(duration), // #nosec G115 -- range checked above
		CafeItems:     cafe,
		GameTotal:     b.GameTotal(),
		CafeTotal:     b.CafeTotal(),
		TotalAmount:   b.Total(),
		PaymentMethod: string(b.Payment().Method),
		PaymentStatus: string(b.Payment().Status),
		Status:        b.Status().String(),
		CreatedAt:     pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(b.UpdatedAt()),
	}, nil
}

func BookingToStatusParams(b *booking.Booking, guardVersion int) sqlc.UpdateBookingStatusParams {
	return sqlc.UpdateBookingStatusParams{
		ID:          b.ID(),
		Version:     int32(guardVersion), // #nosec G115 -- versions start at 1 and grow by one per write
		Status:      b.Status().String(),
		UpdatedAt:   pgconv.TimeToPgtype(b.UpdatedAt()),
		CancelledAt: pgconv.TimePtrToPgtype(b.CancelledAt()),
	}
}

// BookingFromRow rebuilds the aggregate; a row that fails to parse means the
// table holds data the checks should have rejected.
func BookingFromRow(row sqlc.Bookings) (*booking.Booking, error) {
	slot, err := booking.ParseSlot(row.TimeSlot)
	if err != nil {
		return nil, fmt.Errorf("booking %s: %w", row.ID, err)
	}
	status, err := booking.NewStatus(row.Status)
	if err != nil {
		return nil, fmt.Errorf("booking %s: %w", row.ID, err)
	}
	payment, err := booking.NewPayment(row.PaymentMethod, row.PaymentStatus)
	if err != nil {
		return nil, fmt.Errorf("booking %s: %w", row.ID, err)
	}
	var lines []booking.CafeLine
	if len(row.CafeItems) > 0 {
		if err := json.Unmarshal(row.CafeItems, &lines); err != nil {
			return nil, fmt.Errorf("booking %s: decode cafe items: %w", row.ID, err)
		}
	}

	return booking.Reconstruct(booking.Record{
		ID:               row.ID,
		User:             booking.UserSnapshot{ID: row.UserID, Name: row.UserName, Email: row.UserEmail},
		Game:             booking.GameSnapshot{ID: row.GameID, Name: row.GameName, HourlyRate: row.HourlyRate},
		Venue:            booking.VenueSnapshot{ID: row.VenueID, Name: row.VenueName, Address: row.VenueAddress},
		Date:             DateFromPgtype(row.BookingDate),
		Slot:             slot,
		DurationHours:    int(row.DurationHours),
		CafeLines:        lines,
		GameTotal:        row.GameTotal,
		CafeTotal:        row.CafeTotal,
		Total:            row.TotalAmount,
		Payment:          payment,
		Status:           status,
		Version:          int(row.Version),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
		CancelledAt:      pgconv.TimePtrFromPgtype(row.CancelledAt),
		ReminderQueuedAt: pgconv.TimePtrFromPgtype(row.ReminderQueuedAt),
	}), nil
}

func BookingsFromRows(rows []sqlc.Bookings) ([]*booking.Booking, error) {
	out := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := BookingFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}
