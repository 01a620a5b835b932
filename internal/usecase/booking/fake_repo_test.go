package booking

import (
	"context"
	"errors"
	"time"

	domain "github.com/bellamoda/salon-booking/internal/domain/booking"
	"github.com/bellamoda/salon-booking/internal/httperr"
	"github.com/bellamoda/salon-booking/internal/models"
)

var errNotFound = errors.New("record not found")

// fakeRepo is an in-memory stand-in for the gorm repository. It applies
// the same overlap rule the real transaction does so conflict paths can
// be exercised without a database.
type fakeRepo struct {
	services  map[uint]*models.Service
	employees map[uint]*models.User
	deals     map[uint]*models.Deal
	bookings  map[uint]*models.Booking

	nextID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		services:  map[uint]*models.Service{},
		employees: map[uint]*models.User{},
		deals:     map[uint]*models.Deal{},
		bookings:  map[uint]*models.Booking{},
		nextID:    1,
	}
}

func (r *fakeRepo) addService(s models.Service) *models.Service {
	s.ID = r.nextID
	r.nextID++
	r.services[s.ID] = &s
	return &s
}

func (r *fakeRepo) addEmployee(u models.User) *models.User {
	u.ID = r.nextID
	r.nextID++
	u.Role = models.RoleEmployee
	r.employees[u.ID] = &u
	return &u
}

func (r *fakeRepo) addDeal(d models.Deal) *models.Deal {
	d.ID = r.nextID
	r.nextID++
	r.deals[d.ID] = &d
	return &d
}

func (r *fakeRepo) GetService(ctx context.Context, id uint) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, errNotFound
	}
	return s, nil
}

func (r *fakeRepo) GetEmployee(ctx context.Context, id uint) (*models.User, error) {
	u, ok := r.employees[id]
	if !ok {
		return nil, errNotFound
	}
	return u, nil
}

func (r *fakeRepo) GetDeal(ctx context.Context, id uint) (*models.Deal, error) {
	d, ok := r.deals[id]
	if !ok {
		return nil, errNotFound
	}
	return d, nil
}

func (r *fakeRepo) hasConflict(b *models.Booking, excludeID uint) bool {
	for _, other := range r.bookings {
		if other.ID == excludeID {
			continue
		}
		if other.EmployeeID != b.EmployeeID {
			continue
		}
		if other.Status == string(domain.StatusCancelled) {
			continue
		}
		if domain.Overlaps(b.StartTime, b.EndTime, other.StartTime, other.EndTime) {
			return true
		}
	}
	return false
}

func (r *fakeRepo) CreateBookingIfAvailable(ctx context.Context, b *models.Booking) error {
	if r.hasConflict(b, 0) {
		return httperr.ErrBusiness("slot_unavailable")
	}

	b.ID = r.nextID
	r.nextID++

	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeRepo) UpdateBookingIfAvailable(ctx context.Context, b *models.Booking) error {
	if _, ok := r.bookings[b.ID]; !ok {
		return errNotFound
	}
	if r.hasConflict(b, b.ID) {
		return httperr.ErrBusiness("slot_unavailable")
	}

	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeRepo) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeRepo) GetBookingForCustomer(ctx context.Context, id, customerID uint) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok || b.CustomerID != customerID {
		return nil, errNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeRepo) UpdateBooking(ctx context.Context, b *models.Booking) error {
	if _, ok := r.bookings[b.ID]; !ok {
		return errNotFound
	}
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeRepo) ListBusyIntervals(ctx context.Context, employeeID uint, dayStart, dayEnd time.Time) ([]domain.Interval, error) {
	var out []domain.Interval
	for _, b := range r.bookings {
		if b.EmployeeID != employeeID || b.Status == string(domain.StatusCancelled) {
			continue
		}
		if domain.Overlaps(b.StartTime, b.EndTime, dayStart, dayEnd) {
			out = append(out, domain.Interval{Start: b.StartTime, End: b.EndTime})
		}
	}
	return out, nil
}

func (r *fakeRepo) ListBookingsForPeriod(ctx context.Context, employeeID *uint, start, end time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if employeeID != nil && b.EmployeeID != *employeeID {
			continue
		}
		if b.StartTime.Before(start) || !b.StartTime.Before(end) {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakeRepo) ListBookingsForCustomer(ctx context.Context, customerID uint) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.CustomerID == customerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeRepo) CountBookingsByStatus(ctx context.Context) (map[domain.Status]int64, error) {
	out := map[domain.Status]int64{}
	for _, b := range r.bookings {
		out[domain.Status(b.Status)]++
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
