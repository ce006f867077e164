package queries

import (
	"time"

	"gaming-zone-booking/internal/domain/booking"

	"github.com/google/uuid"
)

// BookingView is the read shape of a booking with its snapshots flattened.
type BookingView struct {
	ID            uuid.UUID      `json:"id"`
	UserID        uuid.UUID      `json:"userId"`
	UserName      string         `json:"userName"`
	UserEmail     string         `json:"userEmail"`
	GameID        uuid.UUID      `json:"gameId"`
	GameName      string         `json:"gameName"`
	HourlyRate    int64          `json:"hourlyRate"`
	VenueID       uuid.UUID      `json:"venueId"`
	VenueName     string         `json:"venueName"`
	VenueAddress  string         `json:"venueAddress"`
	Date          string         `json:"date"`
	TimeSlot      string         `json:"timeSlot"`
	DurationHours int            `json:"duration"`
	CafeItems     []CafeLineView `json:"cafeItems"`
	GameTotal     int64          `json:"gameTotal"`
	CafeTotal     int64          `json:"cafeTotal"`
	TotalAmount   int64          `json:"totalAmount"`
	PaymentMethod string         `json:"paymentMethod"`
	PaymentStatus string         `json:"paymentStatus"`
	Status        string         `json:"status"`
	Version       int            `json:"version"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	CancelledAt   *time.Time     `json:"cancelledAt,omitempty"`
}

type CafeLineView struct {
	ItemID   uuid.UUID `json:"itemId"`
	Name     string    `json:"name"`
	Price    int64     `json:"price"`
	Quantity int       `json:"quantity"`
}

type QuoteView struct {
	HourlyRate    int64          `json:"hourlyRate"`
	DurationHours int            `json:"duration"`
	CafeItems     []CafeLineView `json:"cafeItems"`
	GameTotal     int64          `json:"gameTotal"`
	CafeTotal     int64          `json:"cafeTotal"`
	TotalAmount   int64          `json:"totalAmount"`
}

type VenueView struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	Area          string    `json:"area"`
	City          string    `json:"city"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Description   string    `json:"description"`
	ImageURL      string    `json:"imageUrl"`
	Timing        string    `json:"timing"`
	IsOpen        bool      `json:"isOpen"`
	StartingPrice int64     `json:"startingPrice"`
	Rating        float64   `json:"rating"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type VenueDetailView struct {
	Venue     *VenueView      `json:"venue"`
	Games     []*GameView     `json:"games"`
	CafeItems []*CafeItemView `json:"cafeItems"`
}

type GameView struct {
	ID           uuid.UUID `json:"id"`
	VenueID      uuid.UUID `json:"venueId"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"imageUrl"`
	PricePerHour int64     `json:"pricePerHour"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type CafeItemView struct {
	ID          uuid.UUID `json:"id"`
	VenueID     uuid.UUID `json:"venueId"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Price       int64     `json:"price"`
	IsAvailable bool      `json:"isAvailable"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type UserView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func BookingViewFrom(b *booking.Booking) *BookingView {
	u, g, v := b.User(), b.Game(), b.Venue()
	return &BookingView{
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
		Date:          b.Date().String(),
		TimeSlot:      b.Slot().String(),
		DurationHours: b.DurationHours(),
		CafeItems:     cafeLineViews(b.CafeLines()),
		GameTotal:     b.GameTotal(),
		CafeTotal:     b.CafeTotal(),
		TotalAmount:   b.Total(),
		PaymentMethod: string(b.Payment().Method),
		PaymentStatus: string(b.Payment().Status),
		Status:        b.Status().String(),
		Version:       b.Version(),
		CreatedAt:     b.CreatedAt(),
		UpdatedAt:     b.UpdatedAt(),
		CancelledAt:   b.CancelledAt(),
	}
}

func QuoteViewFrom(q booking.Quote) *QuoteView {
	return &QuoteView{
		HourlyRate:    q.HourlyRate,
		DurationHours: q.DurationHours,
		CafeItems:     cafeLineViews(q.CafeLines),
		GameTotal:     q.GameTotal,
		CafeTotal:     q.CafeTotal,
		TotalAmount:   q.Total,
	}
}

func cafeLineViews(lines []booking.CafeLine) []CafeLineView {
	out := make([]CafeLineView, len(lines))
	for i, l := range lines {
		out[i] = CafeLineView{ItemID: l.ItemID, Name: l.Name, Price: l.UnitPrice, Quantity: l.Quantity}
	}
	return out
}

type DashboardView struct {
	TotalVenues    int64          `json:"totalVenues"`
	TotalGames     int64          `json:"totalGames"`
	TotalBookings  int64          `json:"totalBookings"`
	TotalUsers     int64          `json:"totalUsers"`
	TodayBookings  int64          `json:"todayBookings"`
	Revenue        int64          `json:"revenue"`
	RecentBookings []*BookingView `json:"recentBookings"`
}
