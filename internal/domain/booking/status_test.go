package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bellamoda/salon-booking/internal/httperr"
	"github.com/bellamoda/salon-booking/internal/models"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},

		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusPending, false},
		{StatusCompleted, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
	}

	for _, tc := range cases {
		err := CanTransition(tc.from, tc.to)
		if tc.allowed {
			assert.NoError(t, err, "%s -> %s", tc.from, tc.to)
		} else {
			assert.True(t, httperr.IsBusiness(err, "invalid_transition"), "%s -> %s", tc.from, tc.to)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(StatusPending))
	assert.False(t, IsTerminal(StatusConfirmed))
	assert.True(t, IsTerminal(StatusCompleted))
	assert.True(t, IsTerminal(StatusCancelled))
}

func TestCancelCompletedBookingRejected(t *testing.T) {
	now := time.Now()

	b := &models.Booking{Status: string(StatusPending)}

	assert.NoError(t, Confirm(b, now))
	assert.NoError(t, Complete(b, now))
	assert.NotNil(t, b.CompletedAt)

	err := Cancel(b, now)
	assert.True(t, httperr.IsBusiness(err, "invalid_transition"))
	assert.Equal(t, string(StatusCompleted), b.Status)
	assert.Nil(t, b.CancelledAt)
}

func TestParseStatus(t *testing.T) {
	got, ok := ParseStatus("confirmed")
	assert.True(t, ok)
	assert.Equal(t, StatusConfirmed, got)

	_, ok = ParseStatus("archived")
	assert.False(t, ok)
}
