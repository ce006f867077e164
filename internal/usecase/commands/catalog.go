package commands

import (
	"context"

	"gaming-zone-booking/internal/domain/catalog"
	"gaming-zone-booking/internal/domain/user"
	"gaming-zone-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// Patch types leave a field unchanged when it is nil.
type VenuePatch struct {
	Name          *string
	Address       *string
	Area          *string
	City          *string
	Phone         *string
	Email         *string
	Description   *string
	ImageURL      *string
	Timing        *string
	IsOpen        *bool
	StartingPrice *int64
	Rating        *float64
}

// coalesce keeps the current value for fields the patch leaves nil.
func coalesce[T any](next *T, current T) T {
	if next != nil {
		return *next
	}
	return current
}

type GamePatch struct {
	Name         *string
	Description  *string
	ImageURL     *string
	PricePerHour *int64
}

type CafeItemPatch struct {
	Name        *string
	Category    *string
	Price       *int64
	IsAvailable *bool
}

type CatalogCommands interface {
	CreateVenue(ctx context.Context, actor user.Actor, details catalog.VenueDetails) (*catalog.Venue, error)
	UpdateVenue(ctx context.Context, actor user.Actor, id uuid.UUID, p VenuePatch) (*catalog.Venue, error)
	DeleteVenue(ctx context.Context, actor user.Actor, id uuid.UUID) error

	CreateGame(ctx context.Context, actor user.Actor, venueID uuid.UUID, details catalog.GameDetails) (*catalog.Game, error)
	UpdateGame(ctx context.Context, actor user.Actor, id uuid.UUID, p GamePatch) (*catalog.Game, error)
	DeleteGame(ctx context.Context, actor user.Actor, id uuid.UUID) error

	CreateCafeItem(ctx context.Context, actor user.Actor, venueID uuid.UUID, details catalog.CafeItemDetails) (*catalog.CafeItem, error)
	UpdateCafeItem(ctx context.Context, actor user.Actor, id uuid.UUID, p CafeItemPatch) (*catalog.CafeItem, error)
	DeleteCafeItem(ctx context.Context, actor user.Actor, id uuid.UUID) error
}

type catalogUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewCatalogUseCase(uow shared.UnitOfWork) CatalogCommands {
	return &catalogUseCaseImpl{uow: uow}
}

func (uc *catalogUseCaseImpl) CreateVenue(ctx context.Context, actor user.Actor, details catalog.VenueDetails) (*catalog.Venue, error) {
	if !actor.IsAdmin() {
		return nil, user.ErrForbidden
	}
	v, err := catalog.NewVenue(details)
	if err != nil {
		return nil, err
	}

	var created *catalog.Venue
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var cerr error
		created, cerr = tx.Venues().Create(ctx, tx.DB(), v)
		return cerr
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (uc *catalogUseCaseImpl) UpdateVenue(ctx context.Context, actor user.Actor, id uuid.UUID, p VenuePatch) (*catalog.Venue, error) {
	if !actor.IsAdmin() {
		return nil, user.ErrForbidden
	}

	var updated *catalog.Venue
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		v, err := tx.Reads().VenueByID(ctx, id)
		if err != nil {
			return notFoundAs(err, catalog.ErrVenueNotFound)
		}
		cur := v.Details()
		next := catalog.VenueDetails{
			Name:          coalesce(p.Name, cur.Name),
			Address:       coalesce(p.Address, cur.Address),
			Area:          coalesce(p.Area, cur.Area),
			City:          coalesce(p.City, cur.City),
			Phone:         coalesce(p.Phone, cur.Phone),
			Email:         coalesce(p.Email, cur.Email),
			Description:   coalesce(p.Description, cur.Description),
			ImageURL:      coalesce(p.ImageURL, cur.ImageURL),
			Timing:        coalesce(p.Timing, cur.Timing),
			IsOpen:        coalesce(p.IsOpen, cur.IsOpen),
			StartingPrice: coalesce(p.StartingPrice, cur.StartingPrice),
			Rating:        coalesce(p.Rating, cur.Rating),
		}
		if err := v.Update(next); err != nil {
			return err
		}
		updated, err = tx.Venues().Update(ctx, tx.DB(), v)
		return notFoundAs(err, catalog.ErrVenueNotFound)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteVenue cascades to the venue's games and cafe items. Bookings keep
// their snapshots.
func (uc *catalogUseCaseImpl) DeleteVenue(ctx context.Context, actor user.Actor, id uuid.UUID) error {
	if !actor.IsAdmin() {
		return user.ErrForbidden
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return notFoundAs(tx.Venues().Delete(ctx, tx.DB(), id), catalog.ErrVenueNotFound)
	})
}

func (uc *catalogUseCaseImpl) CreateGame(ctx context.Context, actor user.Actor, venueID uuid.UUID, details catalog.GameDetails) (*catalog.Game, error) {
	if !actor.IsAdmin() {
		return nil, user.ErrForbidden
	}
	g, err := catalog.NewGame(venueID, details)
	if err != nil {
		return nil, err
	}

	var created *catalog.Game
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().VenueByID(ctx, venueID); err != nil {
			return notFoundAs(err, catalog.ErrVenueNotFound)
		}
		var cerr error
		created, cerr = tx.Games().Create(ctx, tx.DB(), g)
		return cerr
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (uc *catalogUseCaseImpl) UpdateGame(ctx context.Context, actor user.Actor, id uuid.UUID, p GamePatch) (*catalog.Game, error) {
	if !actor.IsAdmin() {
		return nil, user.ErrForbidden
	}

	var updated *catalog.Game
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		g, err := tx.Reads().GameByID(ctx, id)
		if err != nil {
			return notFoundAs(err, catalog.ErrGameNotFound)
		}
		cur := g.Details()
		next := catalog.GameDetails{
			Name:         coalesce(p.Name, cur.Name),
			Description:  coalesce(p.Description, cur.Description),
			ImageURL:     coalesce(p.ImageURL, cur.ImageURL),
			PricePerHour: coalesce(p.PricePerHour, cur.PricePerHour),
		}
		if err := g.Update(next); err != nil {
			return err
		}
		updated, err = tx.Games().Update(ctx, tx.DB(), g)
		return notFoundAs(err, catalog.ErrGameNotFound)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (uc *catalogUseCaseImpl) DeleteGame(ctx context.Context, actor user.Actor, id uuid.UUID) error {
	if !actor.IsAdmin() {
		return user.ErrForbidden
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return notFoundAs(tx.Games().Delete(ctx, tx.DB(), id), catalog.ErrGameNotFound)
	})
}

func (uc *catalogUseCaseImpl) CreateCafeItem(ctx context.Context, actor user.Actor, venueID uuid.UUID, details catalog.CafeItemDetails) (*catalog.CafeItem, error) {
	if !actor.IsAdmin() {
		return nil, user.ErrForbidden
	}
	item, err := catalog.NewCafeItem(venueID, details)
	if err != nil {
		return nil, err
	}

	var created *catalog.CafeItem
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().VenueByID(ctx, venueID); err != nil {
			return notFoundAs(err, catalog.ErrVenueNotFound)
		}
		var cerr error
		created, cerr = tx.CafeItems().Create(ctx, tx.DB(), item)
		return cerr
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (uc *catalogUseCaseImpl) UpdateCafeItem(ctx context.Context, actor user.Actor, id uuid.UUID, p CafeItemPatch) (*catalog.CafeItem, error) {
	if !actor.IsAdmin() {
		return nil, user.ErrForbidden
	}

	var updated *catalog.CafeItem
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		item, err := tx.Reads().CafeItemByID(ctx, id)
		if err != nil {
			return notFoundAs(err, catalog.ErrCafeItemNotFound)
		}
		cur := item.Details()
		category := cur.Category
		if p.Category != nil {
			if category, err = catalog.NewCategory(*p.Category); err != nil {
				return err
			}
		}
		next := catalog.CafeItemDetails{
			Name:        coalesce(p.Name, cur.Name),
			Category:    category,
			Price:       coalesce(p.Price, cur.Price),
			IsAvailable: coalesce(p.IsAvailable, cur.IsAvailable),
		}
		if err := item.Update(next); err != nil {
			return err
		}
		updated, err = tx.CafeItems().Update(ctx, tx.DB(), item)
		return notFoundAs(err, catalog.ErrCafeItemNotFound)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (uc *catalogUseCaseImpl) DeleteCafeItem(ctx context.Context, actor user.Actor, id uuid.UUID) error {
	if !actor.IsAdmin() {
		return user.ErrForbidden
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return notFoundAs(tx.CafeItems().Delete(ctx, tx.DB(), id), catalog.ErrCafeItemNotFound)
	})
}
