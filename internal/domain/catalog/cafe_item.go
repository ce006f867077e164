package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Category string

const (
	CategoryFood      Category = "Food"
	CategorySnacks    Category = "Snacks"
	CategoryBeverages Category = "Beverages"
	CategoryCoffee    Category = "Coffee"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryFood, CategorySnacks, CategoryBeverages, CategoryCoffee:
		return true
	default:
		return false
	}
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

type CafeItemDetails struct {
	Name        string
	Category    Category
	Price       int64
	IsAvailable bool
}

func (d CafeItemDetails) normalize() (CafeItemDetails, error) {
	d.Name = strings.TrimSpace(d.Name)
	if d.Name == "" {
		return d, ErrInvalidName
	}
	if !d.Category.IsValid() {
		return d, ErrInvalidCategory
	}
	if d.Price < 0 {
		return d, ErrInvalidPrice
	}
	return d, nil
}

type CafeItem struct {
	id        uuid.UUID
	venueID   uuid.UUID
	details   CafeItemDetails
	createdAt time.Time
	updatedAt time.Time
}

func NewCafeItem(venueID uuid.UUID, details CafeItemDetails) (*CafeItem, error) {
	d, err := details.normalize()
	if err != nil {
		return nil, err
	}
	return &CafeItem{id: uuid.New(), venueID: venueID, details: d}, nil
}

func ReconstructCafeItem(id, venueID uuid.UUID, details CafeItemDetails, createdAt, updatedAt time.Time) *CafeItem {
	return &CafeItem{id: id, venueID: venueID, details: details, createdAt: createdAt, updatedAt: updatedAt}
}

func (c *CafeItem) Update(details CafeItemDetails) error {
	d, err := details.normalize()
	if err != nil {
		return err
	}
	c.details = d
	return nil
}

// Orderable reports whether the item can be added to a booking at venueID.
func (c *CafeItem) Orderable(venueID uuid.UUID) bool {
	return c.venueID == venueID && c.details.IsAvailable
}

func (c *CafeItem) ID() uuid.UUID            { return c.id }
func (c *CafeItem) VenueID() uuid.UUID       { return c.venueID }
func (c *CafeItem) Details() CafeItemDetails { return c.details }
func (c *CafeItem) Name() string             { return c.details.Name }
func (c *CafeItem) Price() int64             { return c.details.Price }
func (c *CafeItem) IsAvailable() bool        { return c.details.IsAvailable }
func (c *CafeItem) CreatedAt() time.Time     { return c.createdAt }
func (c *CafeItem) UpdatedAt() time.Time     { return c.updatedAt }
