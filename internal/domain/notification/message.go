package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"gaming-zone-booking/internal/domain/booking"
	"gaming-zone-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUnknownKind      = errs.New("unknown notification kind")
	ErrMissingRecipient = errs.New("notification has no recipient")
)

// Kind doubles as the outbox topic.
type Kind string

const (
	KindConfirmation Kind = "confirmation"
	KindCancellation Kind = "cancellation"
	KindReminder     Kind = "reminder"
)

// Channel is stored as the outbox job kind.
const ChannelEmail = "email"

func (k Kind) IsValid() bool {
	switch k {
	case KindConfirmation, KindCancellation, KindReminder:
		return true
	default:
		return false
	}
}

type CafeLine struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

// Data is everything the email templates render.
type Data struct {
	BookingID     uuid.UUID  `json:"bookingId"`
	UserName      string     `json:"userName"`
	GameName      string     `json:"gameName"`
	VenueName     string     `json:"venueName"`
	VenueAddress  string     `json:"venueAddress"`
	Date          string     `json:"date"`
	TimeSlot      string     `json:"timeSlot"`
	DurationHours int        `json:"duration"`
	CafeItems     []CafeLine `json:"cafeItems"`
	GameTotal     int64      `json:"gameTotal"`
	CafeTotal     int64      `json:"cafeTotal"`
	Total         int64      `json:"totalAmount"`
	PaymentMethod string     `json:"paymentMethod"`
	PaymentStatus string     `json:"paymentStatus"`
}

type Message struct {
	ID            uuid.UUID `json:"id"`
	Kind          Kind      `json:"kind"`
	Recipient     string    `json:"recipient"`
	RecipientName string    `json:"recipientName"`
	Subject       string    `json:"subject"`
	Data          Data      `json:"data"`
}

func Compose(kind Kind, b *booking.Booking) (Message, error) {
	subject, err := subjectFor(kind, b.Game().Name, b.Venue().Name)
	if err != nil {
		return Message{}, err
	}
	u := b.User()
	if u.Email == "" {
		return Message{}, ErrMissingRecipient
	}

	lines := b.CafeLines()
	cafe := make([]CafeLine, len(lines))
	for i, l := range lines {
		cafe[i] = CafeLine{Name: l.Name, Price: l.UnitPrice, Quantity: l.Quantity}
	}

	return Message{
		ID:            uuid.New(),
		Kind:          kind,
		Recipient:     u.Email,
		RecipientName: u.Name,
		Subject:       subject,
		Data: Data{
			BookingID:     b.ID(),
			UserName:      u.Name,
			GameName:      b.Game().Name,
			VenueName:     b.Venue().Name,
			VenueAddress:  b.Venue().Address,
			Date:          b.Date().String(),
			TimeSlot:      b.Slot().String(),
			DurationHours: b.DurationHours(),
			CafeItems:     cafe,
			GameTotal:     b.GameTotal(),
			CafeTotal:     b.CafeTotal(),
			Total:         b.Total(),
			PaymentMethod: string(b.Payment().Method),
			PaymentStatus: string(b.Payment().Status),
		},
	}, nil
}

func subjectFor(kind Kind, game, venue string) (string, error) {
	switch kind {
	case KindConfirmation:
		return fmt.Sprintf("Booking Confirmed - %s at %s", game, venue), nil
	case KindCancellation:
		return fmt.Sprintf("Booking Cancelled - %s at %s", game, venue), nil
	case KindReminder:
		return fmt.Sprintf("Reminder: Your booking tomorrow - %s", game), nil
	default:
		return "", ErrUnknownKind
	}
}

func (m Message) Encode() ([]byte, error) {
	return json.Marshal(m)
}

func Decode(payload []byte) (Message, error) {
	var m Message
	if err := json.Unmarshal(payload, &m); err != nil {
		return Message{}, errs.Wrap(err, "decode notification message")
	}
	if !m.Kind.IsValid() {
		return Message{}, ErrUnknownKind
	}
	if m.Recipient == "" {
		return Message{}, ErrMissingRecipient
	}
	return m, nil
}

// Sender delivers a message to its recipient.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Publisher hands a message to the transport that eventually reaches a Sender.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
}
