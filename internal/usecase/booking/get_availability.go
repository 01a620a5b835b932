package booking

import (
	"context"
	"time"

	"github.com/bellamoda/salon-booking/internal/cache"
	domain "github.com/bellamoda/salon-booking/internal/domain/booking"
	"github.com/bellamoda/salon-booking/internal/httperr"
)

type GetAvailability struct {
	repo  domain.Repository
	cache *cache.Availability
}

func NewGetAvailability(repo domain.Repository, cache *cache.Availability) *GetAvailability {
	return &GetAvailability{repo: repo, cache: cache}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	dateKey := in.Date.Format("2006-01-02")

	if slots, ok := uc.cache.GetSlots(ctx, in.EmployeeID, in.ServiceID, dateKey); ok {
		return slots, nil
	}

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil || !svc.Active {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	if _, err := uc.repo.GetEmployee(ctx, in.EmployeeID); err != nil {
		return nil, httperr.ErrBusiness("employee_not_found")
	}

	dayStart, dayEnd := domain.DayWindow(in.Date)

	busy, err := uc.repo.ListBusyIntervals(ctx, in.EmployeeID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	duration := time.Duration(svc.DurationMin) * time.Minute
	slots := domain.AvailableSlots(in.Date, duration, busy)

	uc.cache.SetSlots(ctx, in.EmployeeID, in.ServiceID, dateKey, slots)

	return slots, nil
}
