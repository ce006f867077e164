//go:build unit || e2e

package builder

import (
	"encoding/json"
	"time"

	"gaming-zone-booking/internal/domain/booking"
	reqdto "gaming-zone-booking/internal/handler/dto/request"
	sqlc "gaming-zone-booking/internal/infra/sqlc/generated"
	"gaming-zone-booking/internal/usecase/commands"
	"gaming-zone-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingBuilder struct {
	ID            uuid.UUID
	User          booking.UserSnapshot
	Game          booking.GameSnapshot
	Venue         booking.VenueSnapshot
	Date          string
	TimeSlot      string
	DurationHours int
	CafeLines     []booking.CafeLine
	PaymentMethod string
	PaymentStatus string
	Status        string
	Version       int
	CreatedAt     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID: uuid.New(),
		User: booking.UserSnapshot{
			ID:    uuid.New(),
			Name:  "Test Player",
			Email: "test@example.com",
		},
		Game: booking.GameSnapshot{
			ID:         uuid.New(),
			Name:       "PS5 Station",
			HourlyRate: 300,
		},
		Venue: booking.VenueSnapshot{
			ID:      uuid.New(),
			Name:    "NeonNexus Koramangala",
			Address: "80 Feet Road, Koramangala, Bengaluru",
		},
		Date:          "2026-03-10",
		TimeSlot:      "18:00",
		DurationHours: 2,
		CafeLines: []booking.CafeLine{
			{ItemID: uuid.New(), Name: "Cold Coffee", UnitPrice: 120, Quantity: 2},
		},
		PaymentMethod: "online",
		PaymentStatus: "paid",
		Status:        "confirmed",
		Version:       1,
		CreatedAt:     time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithOwner(id uuid.UUID) *BookingBuilder {
	b.User.ID = id
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithSlot(date, slot string) *BookingBuilder {
	b.Date = date
	b.TimeSlot = slot
	return b
}

func (b *BookingBuilder) WithoutCafe() *BookingBuilder {
	b.CafeLines = nil
	return b
}

func (b *BookingBuilder) totals() (int64, int64) {
	game := b.Game.HourlyRate * int64(b.DurationHours)
	var cafe int64
	for _, l := range b.CafeLines {
		cafe += l.Subtotal()
	}
	return game, cafe
}

// BuildDomain reconstructs a stored booking with consistent totals.
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	date, err := booking.ParseDate(b.Date)
	if err != nil {
		panic(err)
	}
	slot, err := booking.ParseSlot(b.TimeSlot)
	if err != nil {
		panic(err)
	}
	game, cafe := b.totals()
	rec := booking.Record{
		ID:            b.ID,
		User:          b.User,
		Game:          b.Game,
		Venue:         b.Venue,
		Date:          date,
		Slot:          slot,
		DurationHours: b.DurationHours,
		CafeLines:     b.CafeLines,
		GameTotal:     game,
		CafeTotal:     cafe,
		Total:         game + cafe,
		Payment: booking.Payment{
			Method: booking.PaymentMethod(b.PaymentMethod),
			Status: booking.PaymentStatus(b.PaymentStatus),
		},
		Status:    booking.Status(b.Status),
		Version:   b.Version,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.CreatedAt,
	}
	if rec.Status == booking.StatusCancelled {
		t := b.CreatedAt
		rec.CancelledAt = &t
	}
	return booking.Reconstruct(rec)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return queries.BookingViewFrom(b.BuildDomain())
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	items := make([]reqdto.CafeItemSelection, len(b.CafeLines))
	for i, l := range b.CafeLines {
		items[i] = reqdto.CafeItemSelection{ItemID: l.ItemID, Quantity: l.Quantity}
	}
	return reqdto.CreateBookingRequest{
		GameID:        b.Game.ID,
		VenueID:       b.Venue.ID,
		Date:          b.Date,
		TimeSlot:      b.TimeSlot,
		Duration:      b.DurationHours,
		CafeItems:     items,
		PaymentMethod: b.PaymentMethod,
	}
}

func (b *BookingBuilder) BuildCreateInput() commands.CreateBookingInput {
	req := b.BuildCreateRequestDTO()
	return req.ToInput()
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	game, cafe := b.totals()
	date, _ := booking.ParseDate(b.Date)
	return sqlc.Bookings{
		ID:            b.ID,
		UserID:        b.User.ID,
		UserName:      b.User.Name,
		UserEmail:     b.User.Email,
		GameID:        b.Game.ID,
		GameName:      b.Game.Name,
		HourlyRate:    b.Game.HourlyRate,
		VenueID:       b.Venue.ID,
		VenueName:     b.Venue.Name,
		VenueAddress:  b.Venue.Address,
		BookingDate:   pgtype.Date{Time: date.Time(), Valid: true},
		TimeSlot:      b.TimeSlot,
		DurationHours: int32(b.DurationHours),
		CafeItems:     cafeJSON(b.CafeLines),
		GameTotal:     game,
		CafeTotal:     cafe,
		TotalAmount:   game + cafe,
		PaymentMethod: b.PaymentMethod,
		PaymentStatus: b.PaymentStatus,
		Status:        b.Status,
		Version:       int32(b.Version),
		CreatedAt:     pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:     pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func cafeJSON(lines []booking.CafeLine) []byte {
	if lines == nil {
		lines = []booking.CafeLine{}
	}
	b, _ := json.Marshal(lines)
	return b
}
