package queries

import "math"

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

type Page struct {
	Limit  int
	Offset int
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// Normalize clamps the limit and keeps the offset within int32.
func (p Page) Normalize() Page {
	p.Limit = ValidateLimit(p.Limit)
	if p.Offset < 0 {
		p.Offset = 0
	}
	if p.Offset > math.MaxInt32 {
		p.Offset = math.MaxInt32
	}
	return p
}
