package booking

import (
	"context"

	domain "github.com/bellamoda/salon-booking/internal/domain/booking"
	"github.com/bellamoda/salon-booking/internal/dto"
)

type ListBookingsForCustomer struct {
	repo domain.Repository
}

func NewListBookingsForCustomer(repo domain.Repository) *ListBookingsForCustomer {
	return &ListBookingsForCustomer{repo: repo}
}

func (uc *ListBookingsForCustomer) Execute(
	ctx context.Context,
	customerID uint,
) ([]dto.BookingListDTO, error) {

	bookings, err := uc.repo.ListBookingsForCustomer(ctx, customerID)
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
			EmployeeName: b.Employee.FullName(),
			ServiceName:  b.Service.Name,
			Price:        dto.Price2(b.Price),
			Notes:        b.Notes,
		})
	}

	return out, nil
}
