package booking

import "github.com/google/uuid"

// Snapshots are copied at creation and never re-read from the catalog.

type UserSnapshot struct {
	ID    uuid.UUID
	Name  string
	Email string
}

type GameSnapshot struct {
	ID         uuid.UUID
	Name       string
	HourlyRate int64
}

type VenueSnapshot struct {
	ID      uuid.UUID
	Name    string
	Address string
}
