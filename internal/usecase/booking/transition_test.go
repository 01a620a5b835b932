package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/bellamoda/salon-booking/internal/domain/booking"
	"github.com/bellamoda/salon-booking/internal/httperr"
	"github.com/bellamoda/salon-booking/internal/models"
)

const adminID = uint(1)

func createPendingBooking(t *testing.T, repo *fakeRepo) *models.Booking {
	t.Helper()

	svc, emp := seedCatalog(repo)
	uc := NewCreateBooking(repo, nil, nil)

	b, err := uc.Execute(context.Background(), CreateBookingInput{
		CustomerID: 42,
		ServiceID:  svc.ID,
		EmployeeID: emp.ID,
		Date:       futureDate(),
		Time:       "14:00",
	})
	assert.NoError(t, err)
	return b
}

func TestBookingLifecycle(t *testing.T) {
	repo := newFakeRepo()
	b := createPendingBooking(t, repo)
	ctx := context.Background()

	confirmed, err := NewConfirmBooking(repo, nil).Execute(ctx, adminID, b.ID)
	assert.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), confirmed.Status)
	assert.NotNil(t, confirmed.ConfirmedAt)

	completed, err := NewCompleteBooking(repo, nil).Execute(ctx, adminID, b.ID)
	assert.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), completed.Status)
	assert.NotNil(t, completed.CompletedAt)

	// A completed visit can no longer be cancelled.
	_, err = NewCancelBooking(repo, nil, nil).Execute(ctx, adminID, b.ID, nil)
	assert.True(t, httperr.IsBusiness(err, "invalid_transition"))

	got, err := repo.GetBooking(ctx, b.ID)
	assert.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), got.Status)
}

func TestCompleteRequiresConfirmation(t *testing.T) {
	repo := newFakeRepo()
	b := createPendingBooking(t, repo)

	_, err := NewCompleteBooking(repo, nil).Execute(context.Background(), adminID, b.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_transition"))
}

func TestCancelFreesSlot(t *testing.T) {
	repo := newFakeRepo()
	b := createPendingBooking(t, repo)
	ctx := context.Background()

	_, err := NewCancelBooking(repo, nil, nil).Execute(ctx, adminID, b.ID, nil)
	assert.NoError(t, err)

	// The slot is open again for another customer.
	uc := NewCreateBooking(repo, nil, nil)
	_, err = uc.Execute(ctx, CreateBookingInput{
		CustomerID: 43,
		ServiceID:  b.ServiceID,
		EmployeeID: b.EmployeeID,
		Date:       futureDate(),
		Time:       "14:00",
	})
	assert.NoError(t, err)
}

func TestCustomerCancelScoping(t *testing.T) {
	repo := newFakeRepo()
	b := createPendingBooking(t, repo)
	ctx := context.Background()
	uc := NewCancelBooking(repo, nil, nil)

	stranger := uint(99)
	_, err := uc.Execute(ctx, stranger, b.ID, &stranger)
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))

	owner := b.CustomerID
	cancelled, err := uc.Execute(ctx, owner, b.ID, &owner)
	assert.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), cancelled.Status)
	assert.NotNil(t, cancelled.CancelledAt)
}

func TestTransitionUnknownBooking(t *testing.T) {
	repo := newFakeRepo()
	ctx := context.Background()

	_, err := NewConfirmBooking(repo, nil).Execute(ctx, adminID, 12345)
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}

func TestDashboardCountsAfterLifecycle(t *testing.T) {
	repo := newFakeRepo()
	b := createPendingBooking(t, repo)
	ctx := context.Background()

	uc := NewCreateBooking(repo, nil, nil)
	second, err := uc.Execute(ctx, CreateBookingInput{
		CustomerID: 43,
		ServiceID:  b.ServiceID,
		EmployeeID: b.EmployeeID,
		Date:       futureDate(),
		Time:       "16:00",
	})
	assert.NoError(t, err)

	_, err = NewConfirmBooking(repo, nil).Execute(ctx, adminID, second.ID)
	assert.NoError(t, err)

	out, err := NewDashboardCounts(repo).Execute(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), out.Pending)
	assert.Equal(t, int64(1), out.Confirmed)
	assert.Equal(t, int64(2), out.Total)
}
