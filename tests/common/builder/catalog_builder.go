//go:build unit || e2e

package builder

import (
	"time"

	"gaming-zone-booking/internal/domain/catalog"
	"gaming-zone-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type VenueBuilder struct {
	ID      uuid.UUID
	Details catalog.VenueDetails
}

func NewVenueBuilder() *VenueBuilder {
	return &VenueBuilder{
		ID: uuid.New(),
		Details: catalog.VenueDetails{
			Name:          "NeonNexus Koramangala",
			Address:       "80 Feet Road",
			Area:          "Koramangala",
			City:          "Bengaluru",
			Phone:         "+91 80 4000 1234",
			Email:         "kora@neonnexus.gg",
			Timing:        "10:00 AM - 12:00 AM",
			IsOpen:        true,
			StartingPrice: 150,
			Rating:        4.6,
		},
	}
}

func (v *VenueBuilder) With(mutate func(*VenueBuilder)) *VenueBuilder {
	mutate(v)
	return v
}

func (v *VenueBuilder) BuildDomain() *catalog.Venue {
	now := time.Now()
	return catalog.ReconstructVenue(v.ID, v.Details, now, now)
}

func (v *VenueBuilder) BuildView() *queries.VenueView {
	d := v.Details
	return &queries.VenueView{
		ID:            v.ID,
		Name:          d.Name,
		Address:       d.Address,
		Area:          d.Area,
		City:          d.City,
		Phone:         d.Phone,
		Email:         d.Email,
		Timing:        d.Timing,
		IsOpen:        d.IsOpen,
		StartingPrice: d.StartingPrice,
		Rating:        d.Rating,
	}
}

type GameBuilder struct {
	ID      uuid.UUID
	VenueID uuid.UUID
	Details catalog.GameDetails
}

func NewGameBuilder() *GameBuilder {
	return &GameBuilder{
		ID:      uuid.New(),
		VenueID: uuid.New(),
		Details: catalog.GameDetails{
			Name:         "PS5 Station",
			Description:  "4K display, two controllers",
			PricePerHour: 300,
		},
	}
}

func (g *GameBuilder) With(mutate func(*GameBuilder)) *GameBuilder {
	mutate(g)
	return g
}

func (g *GameBuilder) AtVenue(id uuid.UUID) *GameBuilder {
	g.VenueID = id
	return g
}

func (g *GameBuilder) BuildDomain() *catalog.Game {
	now := time.Now()
	return catalog.ReconstructGame(g.ID, g.VenueID, g.Details, now, now)
}

func (g *GameBuilder) BuildView() *queries.GameView {
	return &queries.GameView{
		ID:           g.ID,
		VenueID:      g.VenueID,
		Name:         g.Details.Name,
		Description:  g.Details.Description,
		ImageURL:     g.Details.ImageURL,
		PricePerHour: g.Details.PricePerHour,
	}
}

type CafeItemBuilder struct {
	ID      uuid.UUID
	VenueID uuid.UUID
	Details catalog.CafeItemDetails
}

func NewCafeItemBuilder() *CafeItemBuilder {
	return &CafeItemBuilder{
		ID:      uuid.New(),
		VenueID: uuid.New(),
		Details: catalog.CafeItemDetails{
			Name:        "Cold Coffee",
			Category:    catalog.CategoryCoffee,
			Price:       120,
			IsAvailable: true,
		},
	}
}

func (c *CafeItemBuilder) With(mutate func(*CafeItemBuilder)) *CafeItemBuilder {
	mutate(c)
	return c
}

func (c *CafeItemBuilder) AtVenue(id uuid.UUID) *CafeItemBuilder {
	c.VenueID = id
	return c
}

func (c *CafeItemBuilder) Unavailable() *CafeItemBuilder {
	c.Details.IsAvailable = false
	return c
}

func (c *CafeItemBuilder) BuildDomain() *catalog.CafeItem {
	now := time.Now()
	return catalog.ReconstructCafeItem(c.ID, c.VenueID, c.Details, now, now)
}

func (c *CafeItemBuilder) BuildView() *queries.CafeItemView {
	return &queries.CafeItemView{
		ID:          c.ID,
		VenueID:     c.VenueID,
		Name:        c.Details.Name,
		Category:    string(c.Details.Category),
		Price:       c.Details.Price,
		IsAvailable: c.Details.IsAvailable,
	}
}
