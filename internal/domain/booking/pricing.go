package booking

import "github.com/google/uuid"

// CafeLine is a cafe item as it was priced when the booking was made.
type CafeLine struct {
	ItemID    uuid.UUID `json:"itemId"`
	Name      string    `json:"name"`
	UnitPrice int64     `json:"price"`
	Quantity  int       `json:"quantity"`
}

func (l CafeLine) Subtotal() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

type Quote struct {
	HourlyRate    int64
	DurationHours int
	CafeLines     []CafeLine
	GameTotal     int64
	CafeTotal     int64
	Total         int64
}

type PriceCalculator interface {
	Calculate(hourlyRate int64, durationHours int, lines []CafeLine) (Quote, error)
}

type DefaultPriceCalculator struct {
	MaxDuration int
}

func NewDefaultPriceCalculator(maxDuration int) *DefaultPriceCalculator {
	return &DefaultPriceCalculator{MaxDuration: maxDuration}
}

func (pc *DefaultPriceCalculator) Calculate(hourlyRate int64, durationHours int, lines []CafeLine) (Quote, error) {
	if hourlyRate <= 0 {
		return Quote{}, ErrInvalidHourlyRate
	}
	if durationHours < 1 || durationHours > pc.MaxDuration {
		return Quote{}, ErrInvalidDuration
	}

	merged, err := NormalizeCafeLines(lines)
	if err != nil {
		return Quote{}, err
	}

	q := Quote{
		HourlyRate:    hourlyRate,
		DurationHours: durationHours,
		CafeLines:     merged,
		GameTotal:     hourlyRate * int64(durationHours),
	}
	for _, l := range merged {
		q.CafeTotal += l.Subtotal()
	}
	q.Total = q.GameTotal + q.CafeTotal
	return q, nil
}

// NormalizeCafeLines merges repeated items in first-seen order and drops
// lines whose final quantity is zero.
func NormalizeCafeLines(lines []CafeLine) ([]CafeLine, error) {
	index := make(map[uuid.UUID]int, len(lines))
	merged := make([]CafeLine, 0, len(lines))
	for _, l := range lines {
		if l.Quantity < 0 {
			return nil, ErrInvalidQuantity
		}
		if l.UnitPrice < 0 {
			return nil, ErrInvalidUnitPrice
		}
		if i, ok := index[l.ItemID]; ok {
			merged[i].Quantity += l.Quantity
			continue
		}
		index[l.ItemID] = len(merged)
		merged = append(merged, l)
	}

	out := merged[:0]
	for _, l := range merged {
		if l.Quantity > 0 {
			out = append(out, l)
		}
	}
	return out, nil
}
