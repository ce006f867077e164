package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type GameDetails struct {
	Name         string
	Description  string
	ImageURL     string
	PricePerHour int64
}

func (d GameDetails) normalize() (GameDetails, error) {
	d.Name = strings.TrimSpace(d.Name)
	if d.Name == "" {
		return d, ErrInvalidName
	}
	if d.PricePerHour <= 0 {
		return d, ErrInvalidHourlyRate
	}
	return d, nil
}

type Game struct {
	id        uuid.UUID
	venueID   uuid.UUID
	details   GameDetails
	createdAt time.Time
	updatedAt time.Time
}

func NewGame(venueID uuid.UUID, details GameDetails) (*Game, error) {
	d, err := details.normalize()
	if err != nil {
		return nil, err
	}
	return &Game{id: uuid.New(), venueID: venueID, details: d}, nil
}

func ReconstructGame(id, venueID uuid.UUID, details GameDetails, createdAt, updatedAt time.Time) *Game {
	return &Game{id: id, venueID: venueID, details: details, createdAt: createdAt, updatedAt: updatedAt}
}

// Update never moves a game to another venue.
func (g *Game) Update(details GameDetails) error {
	d, err := details.normalize()
	if err != nil {
		return err
	}
	g.details = d
	return nil
}

func (g *Game) BelongsTo(venueID uuid.UUID) bool {
	return g.venueID == venueID
}

func (g *Game) ID() uuid.UUID        { return g.id }
func (g *Game) VenueID() uuid.UUID   { return g.venueID }
func (g *Game) Details() GameDetails { return g.details }
func (g *Game) Name() string         { return g.details.Name }
func (g *Game) PricePerHour() int64  { return g.details.PricePerHour }
func (g *Game) CreatedAt() time.Time { return g.createdAt }
func (g *Game) UpdatedAt() time.Time { return g.updatedAt }
