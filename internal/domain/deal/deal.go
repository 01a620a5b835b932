package deal

import (
	"time"

	"github.com/bellamoda/salon-booking/internal/models"
)

// ===============================
// Deal State
// ===============================

type State string

const (
	StateUpcoming State = "upcoming"
	StateActive   State = "active"
	StateExpired  State = "expired"
)

// StateAt resolves the deal window against now at day precision.
// Both endpoints are inclusive: a deal starting and ending today is
// active today.
func StateAt(d *models.Deal, now time.Time) State {
	day := truncateDay(now)
	start := truncateDay(d.StartDate)
	end := truncateDay(d.EndDate)

	switch {
	case day.Before(start):
		return StateUpcoming
	case day.After(end):
		return StateExpired
	default:
		return StateActive
	}
}

func IsActiveAt(d *models.Deal, now time.Time) bool {
	return StateAt(d, now) == StateActive
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ===============================
// Discount
// ===============================

// DiscountedPrice keeps full precision; rounding happens only at the
// presentation boundary.
func DiscountedPrice(base float64, pct int) float64 {
	return base * (1 - float64(pct)/100)
}

// EffectivePrice is the price of record for a service with an optional
// deal attached. A deal that is not active contributes nothing.
func EffectivePrice(svc *models.Service, d *models.Deal, now time.Time) float64 {
	if d == nil || !IsActiveAt(d, now) {
		return svc.Price
	}
	return DiscountedPrice(svc.Price, d.DiscountPct)
}
