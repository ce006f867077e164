package booking

import "time"

const DefaultCancellationCutoff = 2 * time.Hour

type CancellationPolicy struct {
	Cutoff time.Duration
}

func NewCancellationPolicy(cutoff time.Duration) CancellationPolicy {
	if cutoff < 0 {
		cutoff = 0
	}
	return CancellationPolicy{Cutoff: cutoff}
}

// AllowsUserCancel is exclusive: exactly Cutoff before start is already too late.
func (p CancellationPolicy) AllowsUserCancel(slotStart, now time.Time) bool {
	return slotStart.Sub(now) > p.Cutoff
}
