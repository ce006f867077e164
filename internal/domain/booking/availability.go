package booking

import (
	"time"

	"github.com/google/uuid"
)

type SlotAvailability struct {
	Slot      Slot
	Available bool
}

type Availability struct {
	GameID uuid.UUID
	Date   Date
	Slots  []SlotAvailability
}

// AvailabilityEngine evaluates the daily grid against occupied slot labels.
// A booking occupies only its start slot; duration is not projected forward.
type AvailabilityEngine struct {
	grid Grid
	loc  *time.Location
}

func NewAvailabilityEngine(grid Grid, loc *time.Location) *AvailabilityEngine {
	if loc == nil {
		loc = time.UTC
	}
	return &AvailabilityEngine{grid: grid, loc: loc}
}

func (e *AvailabilityEngine) Grid() Grid               { return e.grid }
func (e *AvailabilityEngine) Location() *time.Location { return e.loc }

func (e *AvailabilityEngine) Evaluate(gameID uuid.UUID, date Date, occupied []string, now time.Time) Availability {
	taken := make(map[string]struct{}, len(occupied))
	for _, label := range occupied {
		taken[label] = struct{}{}
	}

	slots := e.grid.Slots()
	result := Availability{GameID: gameID, Date: date, Slots: make([]SlotAvailability, len(slots))}
	for i, s := range slots {
		_, busy := taken[s.String()]
		result.Slots[i] = SlotAvailability{
			Slot:      s,
			Available: !busy && !e.IsPast(date, s, now),
		}
	}
	return result
}

// Unavailable marks every slot unbookable; used when the game is unknown.
func (e *AvailabilityEngine) Unavailable(gameID uuid.UUID, date Date) Availability {
	slots := e.grid.Slots()
	result := Availability{GameID: gameID, Date: date, Slots: make([]SlotAvailability, len(slots))}
	for i, s := range slots {
		result.Slots[i] = SlotAvailability{Slot: s}
	}
	return result
}

func (e *AvailabilityEngine) IsBookable(date Date, slot Slot, occupied []string, now time.Time) bool {
	if !e.grid.Contains(slot) || e.IsPast(date, slot, now) {
		return false
	}
	label := slot.String()
	for _, o := range occupied {
		if o == label {
			return false
		}
	}
	return true
}

func (e *AvailabilityEngine) IsPast(date Date, slot Slot, now time.Time) bool {
	return date.At(slot, e.loc).Before(now)
}

func (e *AvailabilityEngine) Today(now time.Time) Date {
	return DateOf(now.In(e.loc))
}
