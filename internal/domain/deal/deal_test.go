package deal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bellamoda/salon-booking/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStateAt(t *testing.T) {
	d := &models.Deal{
		StartDate: day(2026, 4, 10),
		EndDate:   day(2026, 4, 20),
	}

	assert.Equal(t, StateUpcoming, StateAt(d, day(2026, 4, 9)))
	assert.Equal(t, StateActive, StateAt(d, day(2026, 4, 10)))
	assert.Equal(t, StateActive, StateAt(d, day(2026, 4, 15)))
	assert.Equal(t, StateActive, StateAt(d, day(2026, 4, 20)))
	assert.Equal(t, StateExpired, StateAt(d, day(2026, 4, 21)))
}

func TestStateAtIgnoresTimeOfDay(t *testing.T) {
	d := &models.Deal{
		StartDate: day(2026, 4, 10),
		EndDate:   day(2026, 4, 10),
	}

	// Late in the evening of the end date the deal still applies.
	evening := time.Date(2026, 4, 10, 23, 45, 0, 0, time.UTC)
	assert.True(t, IsActiveAt(d, evening))
}

func TestSingleDayDealIsActive(t *testing.T) {
	today := day(2026, 5, 1)
	d := &models.Deal{StartDate: today, EndDate: today}

	assert.Equal(t, StateActive, StateAt(d, today))
}

func TestDiscountedPrice(t *testing.T) {
	assert.InDelta(t, 80.0, DiscountedPrice(100, 20), 1e-9)
	assert.InDelta(t, 49.99, DiscountedPrice(49.99, 0), 1e-9)
	assert.InDelta(t, 0.0, DiscountedPrice(35, 100), 1e-9)
	assert.InDelta(t, 37.4925, DiscountedPrice(49.99, 25), 1e-9)
}

func TestEffectivePrice(t *testing.T) {
	svc := &models.Service{Price: 50}
	now := day(2026, 4, 15)

	active := &models.Deal{
		StartDate:   day(2026, 4, 10),
		EndDate:     day(2026, 4, 20),
		DiscountPct: 10,
	}
	expired := &models.Deal{
		StartDate:   day(2026, 3, 1),
		EndDate:     day(2026, 3, 31),
		DiscountPct: 10,
	}

	assert.InDelta(t, 45.0, EffectivePrice(svc, active, now), 1e-9)
	assert.InDelta(t, 50.0, EffectivePrice(svc, expired, now), 1e-9)
	assert.InDelta(t, 50.0, EffectivePrice(svc, nil, now), 1e-9)
}
