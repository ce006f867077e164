package request

import (
	"gaming-zone-booking/internal/domain/catalog"
	"gaming-zone-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CreateVenueRequest struct {
	Name          string  `json:"name" binding:"required,max=200"`
	Address       string  `json:"address" binding:"required"`
	Area          string  `json:"area"`
	City          string  `json:"city" binding:"required"`
	Phone         string  `json:"phone"`
	Email         string  `json:"email" binding:"omitempty,email"`
	Description   string  `json:"description"`
	ImageURL      string  `json:"imageUrl" binding:"omitempty,url"`
	Timing        string  `json:"timing"`
	IsOpen        *bool   `json:"isOpen"`
	StartingPrice int64   `json:"startingPrice" binding:"min=0"`
	Rating        float64 `json:"rating" binding:"min=0,max=5"`
}

// ToDetails defaults IsOpen to true when omitted.
func (r *CreateVenueRequest) ToDetails() (catalog.VenueDetails, error) {
	var d catalog.VenueDetails
	if err := copier.Copy(&d, r); err != nil {
		return d, err
	}
	d.IsOpen = r.IsOpen == nil || *r.IsOpen
	return d, nil
}

type UpdateVenueRequest struct {
	Name          *string  `json:"name" binding:"omitempty,min=1,max=200"`
	Address       *string  `json:"address" binding:"omitempty,min=1"`
	Area          *string  `json:"area"`
	City          *string  `json:"city" binding:"omitempty,min=1"`
	Phone         *string  `json:"phone"`
	Email         *string  `json:"email" binding:"omitempty,email"`
	Description   *string  `json:"description"`
	ImageURL      *string  `json:"imageUrl" binding:"omitempty,url"`
	Timing        *string  `json:"timing"`
	IsOpen        *bool    `json:"isOpen"`
	StartingPrice *int64   `json:"startingPrice" binding:"omitempty,min=0"`
	Rating        *float64 `json:"rating" binding:"omitempty,min=0,max=5"`
}

func (r *UpdateVenueRequest) ToPatch() (commands.VenuePatch, error) {
	var p commands.VenuePatch
	err := copier.Copy(&p, r)
	return p, err
}

type CreateGameRequest struct {
	VenueID      uuid.UUID `json:"venueId" binding:"required"`
	Name         string    `json:"name" binding:"required,max=200"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"imageUrl" binding:"omitempty,url"`
	PricePerHour int64     `json:"pricePerHour" binding:"required,gt=0"`
}

func (r *CreateGameRequest) ToDetails() (catalog.GameDetails, error) {
	var d catalog.GameDetails
	err := copier.Copy(&d, r)
	return d, err
}

type UpdateGameRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=1,max=200"`
	Description  *string `json:"description"`
	ImageURL     *string `json:"imageUrl" binding:"omitempty,url"`
	PricePerHour *int64  `json:"pricePerHour" binding:"omitempty,gt=0"`
}

func (r *UpdateGameRequest) ToPatch() (commands.GamePatch, error) {
	var p commands.GamePatch
	err := copier.Copy(&p, r)
	return p, err
}

type CreateCafeItemRequest struct {
	VenueID     uuid.UUID `json:"venueId" binding:"required"`
	Name        string    `json:"name" binding:"required,max=200"`
	Category    string    `json:"category" binding:"required,oneof=Food Snacks Beverages Coffee"`
	Price       int64     `json:"price" binding:"min=0"`
	IsAvailable *bool     `json:"isAvailable"`
}

// ToDetails defaults IsAvailable to true when omitted.
func (r *CreateCafeItemRequest) ToDetails() (catalog.CafeItemDetails, error) {
	category, err := catalog.NewCategory(r.Category)
	if err != nil {
		return catalog.CafeItemDetails{}, err
	}
	return catalog.CafeItemDetails{
		Name:        r.Name,
		Category:    category,
		Price:       r.Price,
		IsAvailable: r.IsAvailable == nil || *r.IsAvailable,
	}, nil
}

type UpdateCafeItemRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=200"`
	Category    *string `json:"category" binding:"omitempty,oneof=Food Snacks Beverages Coffee"`
	Price       *int64  `json:"price" binding:"omitempty,min=0"`
	IsAvailable *bool   `json:"isAvailable"`
}

func (r *UpdateCafeItemRequest) ToPatch() (commands.CafeItemPatch, error) {
	var p commands.CafeItemPatch
	err := copier.Copy(&p, r)
	return p, err
}
