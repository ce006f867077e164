package booking

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const DateLayout = "2006-01-02"

var slotPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):00$`)

// Slot is a one-hour start label on the daily grid.
type Slot struct {
	hour int
}

func ParseSlot(label string) (Slot, error) {
	m := slotPattern.FindStringSubmatch(label)
	if m == nil {
		return Slot{}, ErrInvalidSlot
	}
	h, _ := strconv.Atoi(m[1])
	return Slot{hour: h}, nil
}

func SlotAt(hour int) Slot {
	return Slot{hour: hour}
}

func (s Slot) Hour() int      { return s.hour }
func (s Slot) String() string { return fmt.Sprintf("%02d:00", s.hour) }

// Grid is the hourly operating window; Close is exclusive and may be 24.
type Grid struct {
	Open  int
	Close int
}

func NewGrid(open, close int) (Grid, error) {
	if open < 0 || close > 24 || open >= close {
		return Grid{}, ErrInvalidGrid
	}
	return Grid{Open: open, Close: close}, nil
}

func (g Grid) Slots() []Slot {
	slots := make([]Slot, 0, g.Close-g.Open)
	for h := g.Open; h < g.Close; h++ {
		slots = append(slots, Slot{hour: h})
	}
	return slots
}

func (g Grid) Contains(s Slot) bool {
	return s.hour >= g.Open && s.hour < g.Close
}

// Date is a calendar day with no time-zone attached.
type Date struct {
	year  int
	month time.Month
	day   int
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return DateOf(t), nil
}

// DateOf takes the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

func (d Date) IsZero() bool { return d.year == 0 && d.month == 0 && d.day == 0 }

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

// Time is midnight UTC, the representation used for date columns.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

func (d Date) Before(o Date) bool { return d.Time().Before(o.Time()) }
func (d Date) After(o Date) bool  { return d.Time().After(o.Time()) }

// At returns the wall-clock start of slot s on d in loc.
func (d Date) At(s Slot, loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, s.hour, 0, 0, 0, loc)
}
