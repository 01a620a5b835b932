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

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	CustomerID uint
	ServiceID  uint
	EmployeeID uint

	Date string // YYYY-MM-DD
	Time string // HH:mm

	DealID *uint
	Notes  string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	cache *cache.Availability
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	cache *cache.Availability,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

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

	price, dealID, err := uc.settlePrice(ctx, svc, in.DealID, now)
	if err != nil {
		return nil, err
	}

	b := &models.Booking{
		CustomerID: in.CustomerID,
		EmployeeID: emp.ID,
		ServiceID:  svc.ID,
		DealID:     dealID,
		StartTime:  start,
		EndTime:    end,
		Price:      price,
		Status:     string(domain.InitialStatus()),
		Notes:      in.Notes,
	}

	// The availability invariant is enforced here, inside the insert
	// transaction, even though the caller usually checked a slot list
	// moments ago.
	if err := uc.repo.CreateBookingIfAvailable(ctx, b); err != nil {
		return nil, err
	}

	uc.cache.InvalidateDay(ctx, emp.ID, start.Format("2006-01-02"))

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.CustomerID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

// settlePrice snapshots the price of record: the service price, reduced
// by the attached deal when that deal covers the service and is active.
func (uc *CreateBooking) settlePrice(
	ctx context.Context,
	svc *models.Service,
	dealID *uint,
	now time.Time,
) (float64, *uint, error) {

	if dealID == nil {
		return svc.Price, nil, nil
	}

	d, err := uc.repo.GetDeal(ctx, *dealID)
	if err != nil {
		return 0, nil, httperr.ErrBusiness("deal_not_found")
	}

	if d.ServiceID != svc.ID {
		return 0, nil, httperr.ErrBusiness("deal_not_applicable")
	}

	if !dealdomain.IsActiveAt(d, now) {
		return 0, nil, httperr.ErrBusiness("deal_not_active")
	}

	return dealdomain.DiscountedPrice(svc.Price, d.DiscountPct), dealID, nil
}
