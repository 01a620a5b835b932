package booking

import (
	"context"
	"time"

	"github.com/bellamoda/salon-booking/internal/models"
)

type Repository interface {
	// -------- Catalog --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	GetEmployee(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetDeal(
		ctx context.Context,
		id uint,
	) (*models.Deal, error)

	// -------- Booking (create / update with conflict guard) --------

	// CreateBookingIfAvailable re-checks the availability invariant and
	// inserts the row in one transaction. Returns the slot_unavailable
	// business error when another non-cancelled booking overlaps.
	CreateBookingIfAvailable(
		ctx context.Context,
		b *models.Booking,
	) error

	// UpdateBookingIfAvailable is the same guard excluding the booking's
	// own id from the conflict check.
	UpdateBookingIfAvailable(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (state change) --------
	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	GetBookingForCustomer(
		ctx context.Context,
		id uint,
		customerID uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Availability --------
	ListBusyIntervals(
		ctx context.Context,
		employeeID uint,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]Interval, error)

	// -------- Listings / dashboard --------
	ListBookingsForPeriod(
		ctx context.Context,
		employeeID *uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)

	ListBookingsForCustomer(
		ctx context.Context,
		customerID uint,
	) ([]models.Booking, error)

	CountBookingsByStatus(
		ctx context.Context,
	) (map[Status]int64, error)
}
