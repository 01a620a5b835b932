package booking

import (
	"context"
	"time"

	"github.com/bellamoda/salon-booking/internal/audit"
	"github.com/bellamoda/salon-booking/internal/cache"
	domain "github.com/bellamoda/salon-booking/internal/domain/booking"
	dealdomain "github.com/bellamoda/salon-booking/internal/domain/deal"
	"github.com/bellamoda/salon-booking/internal/httperr"
	"github.com/bellamoda/salon-booking/internal/models"
	"github.com/bellamoda/salon-booking/internal/timezone"
)

type UpdateBookingInput struct {
	BookingID uint

	ServiceID  uint
	EmployeeID uint

	Date string // YYYY-MM-DD
	Time string // HH:mm

	DealID *uint
	Notes  string
}

// UpdateBooking reschedules a live booking. Status never changes here;
// transitions go through Confirm/Complete/Cancel. End time and price are
// re-derived from the new service/slot/deal.
type UpdateBooking struct {
	repo  domain.Repository
	cache *cache.Availability
	audit *audit.Dispatcher
}

func NewUpdateBooking(
	repo domain.Repository,
	cache *cache.Availability,
	audit *audit.Dispatcher,
) *UpdateBooking {
	return &UpdateBooking{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *UpdateBooking) Execute(
	ctx context.Context,
	actorID uint,
	in UpdateBookingInput,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, in.BookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if domain.IsTerminal(domain.Status(b.Status)) {
		return nil, httperr.ErrBusiness("booking_not_editable")
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	now := timezone.Now()
	if start.Before(now) {
		return nil, httperr.ErrBusiness("date_in_past")
	}

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil || !svc.Active {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	emp, err := uc.repo.GetEmployee(ctx, in.EmployeeID)
	if err != nil {
		return nil, httperr.ErrBusiness("employee_not_found")
	}

	end := start.Add(time.Duration(svc.DurationMin) * time.Minute)

	open, close := domain.DayWindow(start)
	if start.Before(open) || end.After(close) {
		return nil, httperr.ErrBusiness("outside_opening_hours")
	}

	price := svc.Price
	if in.DealID != nil {
		d, err := uc.repo.GetDeal(ctx, *in.DealID)
		if err != nil {
			return nil, httperr.ErrBusiness("deal_not_found")
		}
		if d.ServiceID != svc.ID {
			return nil, httperr.ErrBusiness("deal_not_applicable")
		}
		if !dealdomain.IsActiveAt(d, now) {
			return nil, httperr.ErrBusiness("deal_not_active")
		}
		price = dealdomain.DiscountedPrice(svc.Price, d.DiscountPct)
	}

	prevEmployee := b.EmployeeID
	prevDay := b.StartTime.Format("2006-01-02")

	b.ServiceID = svc.ID
	b.EmployeeID = emp.ID
	b.DealID = in.DealID
	b.StartTime = start
	b.EndTime = end
	b.Price = price
	b.Notes = in.Notes

	if err := uc.repo.UpdateBookingIfAvailable(ctx, b); err != nil {
		return nil, err
	}

	uc.cache.InvalidateDay(ctx, prevEmployee, prevDay)
	uc.cache.InvalidateDay(ctx, emp.ID, start.Format("2006-01-02"))

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "booking_updated",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
