package catalog

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MinRating = 0.0
	MaxRating = 5.0
)

// VenueDetails is the admin-editable part of a venue.
type VenueDetails struct {
	Name          string
	Address       string
	Area          string
	City          string
	Phone         string
	Email         string
	Description   string
	ImageURL      string
	Timing        string
	IsOpen        bool
	StartingPrice int64
	Rating        float64
}

func (d VenueDetails) normalize() (VenueDetails, error) {
	d.Name = strings.TrimSpace(d.Name)
	d.Address = strings.TrimSpace(d.Address)
	d.Area = strings.TrimSpace(d.Area)
	d.City = strings.TrimSpace(d.City)
	if d.Name == "" {
		return d, ErrInvalidName
	}
	if d.Address == "" {
		return d, ErrInvalidAddress
	}
	if d.City == "" {
		return d, ErrInvalidCity
	}
	if d.StartingPrice < 0 {
		return d, ErrInvalidPrice
	}
	if math.IsNaN(d.Rating) || d.Rating < MinRating || d.Rating > MaxRating {
		return d, ErrInvalidRating
	}
	d.Rating = math.Round(d.Rating*10) / 10
	return d, nil
}

type Venue struct {
	id        uuid.UUID
	details   VenueDetails
	createdAt time.Time
	updatedAt time.Time
}

func NewVenue(details VenueDetails) (*Venue, error) {
	d, err := details.normalize()
	if err != nil {
		return nil, err
	}
	return &Venue{id: uuid.New(), details: d}, nil
}

func ReconstructVenue(id uuid.UUID, details VenueDetails, createdAt, updatedAt time.Time) *Venue {
	return &Venue{id: id, details: details, createdAt: createdAt, updatedAt: updatedAt}
}

func (v *Venue) Update(details VenueDetails) error {
	d, err := details.normalize()
	if err != nil {
		return err
	}
	v.details = d
	return nil
}

// FullAddress joins address, area and city, skipping blank parts.
func (v *Venue) FullAddress() string {
	return FormatAddress(v.details.Address, v.details.Area, v.details.City)
}

func FormatAddress(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}

func (v *Venue) ID() uuid.UUID         { return v.id }
func (v *Venue) Details() VenueDetails { return v.details }
func (v *Venue) Name() string          { return v.details.Name }
func (v *Venue) City() string          { return v.details.City }
func (v *Venue) IsOpen() bool          { return v.details.IsOpen }
func (v *Venue) CreatedAt() time.Time  { return v.createdAt }
func (v *Venue) UpdatedAt() time.Time  { return v.updatedAt }
