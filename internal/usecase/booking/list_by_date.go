package booking

import (
	"context"
	"time"

	domain "github.com/bellamoda/salon-booking/internal/domain/booking"
	"github.com/bellamoda/salon-booking/internal/dto"
)

type ListBookingsByDate struct {
	repo domain.Repository
}

func NewListBookingsByDate(repo domain.Repository) *ListBookingsByDate {
	return &ListBookingsByDate{repo: repo}
}

// Execute lists one calendar day of bookings, optionally filtered to one
// employee. Used by the admin dashboard and the employee schedule view.
func (uc *ListBookingsByDate) Execute(
	ctx context.Context,
	employeeID *uint,
	date time.Time,
) ([]dto.BookingListDTO, error) {

	start := time.Date(
		date.Year(), date.Month(), date.Day(),
		0, 0, 0, 0,
		date.Location(),
	)
	end := start.Add(24 * time.Hour)

	bookings, err := uc.repo.ListBookingsForPeriod(ctx, employeeID, start, end)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:           b.ID,
			StartTime:    b.StartTime,
			EndTime:      b.EndTime,
			Status:       b.Status,
			CustomerName: b.Customer.FullName(),
			EmployeeName: b.Employee.FullName(),
			ServiceName:  b.Service.Name,
			Price:        dto.Price2(b.Price),
			Notes:        b.Notes,
		})
	}

	return out, nil
}
