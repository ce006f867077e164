package queries

import (
	"context"

	"gaming-zone-booking/internal/domain/booking"
	"gaming-zone-booking/internal/domain/catalog"
	"gaming-zone-booking/internal/domain/user"
	"gaming-zone-booking/internal/infra"

	"github.com/google/uuid"
)

type BookingFilter struct {
	Status  *booking.Status
	GameID  *uuid.UUID
	VenueID *uuid.UUID
	Date    *booking.Date
	Page    Page
}

type QuoteItem struct {
	ItemID   uuid.UUID
	Quantity int
}

type QuoteInput struct {
	GameID        uuid.UUID
	DurationHours int
	CafeItems     []QuoteItem
}

type BookingQueries interface {
	GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*BookingView, error)
	ListForUser(ctx context.Context, actor user.Actor, status string, limit int) ([]*BookingView, error)
	List(ctx context.Context, actor user.Actor, f BookingFilter) ([]*BookingView, error)
	Quote(ctx context.Context, in QuoteInput) (*QuoteView, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ListByUser(ctx context.Context, userID uuid.UUID, status *booking.Status, limit int32) ([]*booking.Booking, error)
	List(ctx context.Context, f BookingFilter) ([]*booking.Booking, error)
}

type bookingQueriesImpl struct {
	store      BookingReadStore
	catalog    CatalogReadStore
	calculator booking.PriceCalculator
}

func NewBookingQueries(store BookingReadStore, catalogStore CatalogReadStore, calculator booking.PriceCalculator) BookingQueries {
	return &bookingQueriesImpl{store: store, catalog: catalogStore, calculator: calculator}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*BookingView, error) {
	b, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, err
	}
	if !b.VisibleTo(actor) {
		return nil, booking.ErrNotOwner
	}
	return BookingViewFrom(b), nil
}

func (q *bookingQueriesImpl) ListForUser(ctx context.Context, actor user.Actor, status string, limit int) ([]*BookingView, error) {
	var filter *booking.Status
	if status != "" {
		s, err := booking.NewStatus(status)
		if err != nil {
			return nil, err
		}
		filter = &s
	}
	rows, err := q.store.ListByUser(ctx, actor.UserID, filter, int32(ValidateLimit(limit))) // #nosec G115 -- clamped by ValidateLimit
	if err != nil {
		return nil, err
	}
	return bookingViews(rows), nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, actor user.Actor, f BookingFilter) ([]*BookingView, error) {
	if !actor.IsAdmin() {
		return nil, booking.ErrAdminOnly
	}
	f.Page = f.Page.Normalize()
	rows, err := q.store.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return bookingViews(rows), nil
}

// Quote prices a prospective booking without checking availability.
func (q *bookingQueriesImpl) Quote(ctx context.Context, in QuoteInput) (*QuoteView, error) {
	game, err := q.catalog.GameByID(ctx, in.GameID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, catalog.ErrGameNotFound
		}
		return nil, err
	}

	menu, err := q.catalog.CafeItemsByVenue(ctx, game.VenueID, false)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*CafeItemView, len(menu))
	for _, item := range menu {
		byID[item.ID] = item
	}

	lines := make([]booking.CafeLine, 0, len(in.CafeItems))
	for _, sel := range in.CafeItems {
		if sel.Quantity == 0 {
			continue
		}
		item, ok := byID[sel.ItemID]
		if !ok {
			return nil, booking.ErrCafeItemUnavailable
		}
		lines = append(lines, booking.CafeLine{
			ItemID:    item.ID,
			Name:      item.Name,
			UnitPrice: item.Price,
			Quantity:  sel.Quantity,
		})
	}

	quote, err := q.calculator.Calculate(game.PricePerHour, in.DurationHours, lines)
	if err != nil {
		return nil, err
	}
	return QuoteViewFrom(quote), nil
}

func bookingViews(rows []*booking.Booking) []*BookingView {
	out := make([]*BookingView, len(rows))
	for i, b := range rows {
		out[i] = BookingViewFrom(b)
	}
	return out
}
