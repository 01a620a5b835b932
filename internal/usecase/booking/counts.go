package booking

import (
	"context"

	domain "github.com/bellamoda/salon-booking/internal/domain/booking"
	"github.com/bellamoda/salon-booking/internal/dto"
)

type DashboardCounts struct {
	repo domain.Repository
}

func NewDashboardCounts(repo domain.Repository) *DashboardCounts {
	return &DashboardCounts{repo: repo}
}

func (uc *DashboardCounts) Execute(ctx context.Context) (*dto.BookingCountsDTO, error) {
	counts, err := uc.repo.CountBookingsByStatus(ctx)
	if err != nil {
		return nil, err
	}

	out := &dto.BookingCountsDTO{
		Pending:   counts[domain.StatusPending],
		Confirmed: counts[domain.StatusConfirmed],
		Completed: counts[domain.StatusCompleted],
		Cancelled: counts[domain.StatusCancelled],
	}
	out.Total = out.Pending + out.Confirmed + out.Completed + out.Cancelled

	return out, nil
}
