package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bellamoda/salon-booking/internal/httperr"
)

func TestUpdateBookingReschedule(t *testing.T) {
	repo := newFakeRepo()
	b := createPendingBooking(t, repo)
	uc := NewUpdateBooking(repo, nil, nil)
	ctx := context.Background()

	updated, err := uc.Execute(ctx, adminID, UpdateBookingInput{
		BookingID:  b.ID,
		ServiceID:  b.ServiceID,
		EmployeeID: b.EmployeeID,
		Date:       futureDate(),
		Time:       "15:00",
		Notes:      "moved by phone",
	})

	assert.NoError(t, err)
	assert.Equal(t, "15:00", updated.StartTime.Format("15:04"))
	assert.Equal(t, "16:00", updated.EndTime.Format("15:04"))
	assert.Equal(t, "moved by phone", updated.Notes)
	assert.Equal(t, b.Status, updated.Status)
}

func TestUpdateBookingKeepsOwnSlot(t *testing.T) {
	repo := newFakeRepo()
	b := createPendingBooking(t, repo)
	uc := NewUpdateBooking(repo, nil, nil)

	// Re-saving the same slot must not conflict with itself.
	_, err := uc.Execute(context.Background(), adminID, UpdateBookingInput{
		BookingID:  b.ID,
		ServiceID:  b.ServiceID,
		EmployeeID: b.EmployeeID,
		Date:       futureDate(),
		Time:       "14:00",
	})
	assert.NoError(t, err)
}

func TestUpdateBookingConflict(t *testing.T) {
	repo := newFakeRepo()
	b := createPendingBooking(t, repo)
	ctx := context.Background()

	other, err := NewCreateBooking(repo, nil, nil).Execute(ctx, CreateBookingInput{
		CustomerID: 43,
		ServiceID:  b.ServiceID,
		EmployeeID: b.EmployeeID,
		Date:       futureDate(),
		Time:       "16:00",
	})
	assert.NoError(t, err)

	_, err = NewUpdateBooking(repo, nil, nil).Execute(ctx, adminID, UpdateBookingInput{
		BookingID:  b.ID,
		ServiceID:  b.ServiceID,
		EmployeeID: b.EmployeeID,
		Date:       futureDate(),
		Time:       other.StartTime.Format("15:04"),
	})
	assert.True(t, httperr.IsBusiness(err, "slot_unavailable"))
}

func TestUpdateBookingTerminalRejected(t *testing.T) {
	repo := newFakeRepo()
	b := createPendingBooking(t, repo)
	ctx := context.Background()

	_, err := NewCancelBooking(repo, nil, nil).Execute(ctx, adminID, b.ID, nil)
	assert.NoError(t, err)

	_, err = NewUpdateBooking(repo, nil, nil).Execute(ctx, adminID, UpdateBookingInput{
		BookingID:  b.ID,
		ServiceID:  b.ServiceID,
		EmployeeID: b.EmployeeID,
		Date:       futureDate(),
		Time:       "15:00",
	})
	assert.True(t, httperr.IsBusiness(err, "booking_not_editable"))
}
