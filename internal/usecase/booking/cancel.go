package booking

import (
	"context"

	"github.com/bellamoda/salon-booking/internal/audit"
	"github.com/bellamoda/salon-booking/internal/cache"
	domain "github.com/bellamoda/salon-booking/internal/domain/booking"
	"github.com/bellamoda/salon-booking/internal/httperr"
	"github.com/bellamoda/salon-booking/internal/models"
	"github.com/bellamoda/salon-booking/internal/timezone"
)

type CancelBooking struct {
	repo  domain.Repository
	cache *cache.Availability
	audit *audit.Dispatcher
}

func NewCancelBooking(
	repo domain.Repository,
	cache *cache.Availability,
	audit *audit.Dispatcher,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

// Execute cancels a booking. When customerID is non-nil the booking must
// belong to that customer (self-service cancellation); admins pass nil.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	actorID uint,
	bookingID uint,
	customerID *uint,
) (*models.Booking, error) {

	var (
		b   *models.Booking
		err error
	)

	if customerID != nil {
		b, err = uc.repo.GetBookingForCustomer(ctx, bookingID, *customerID)
	} else {
		b, err = uc.repo.GetBooking(ctx, bookingID)
	}
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := domain.Cancel(b, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	// Cancellation frees the slot.
	uc.cache.InvalidateDay(ctx, b.EmployeeID, b.StartTime.Format("2006-01-02"))

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
