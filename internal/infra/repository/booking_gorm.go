package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/bellamoda/salon-booking/internal/domain/booking"
	"github.com/bellamoda/salon-booking/internal/httperr"
	"github.com/bellamoda/salon-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *BookingGormRepository) GetEmployee(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var emp models.User
	if err := r.db.WithContext(ctx).
		Where("id = ? AND role = ?", id, models.RoleEmployee).
		First(&emp).Error; err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *BookingGormRepository) GetDeal(
	ctx context.Context,
	id uint,
) (*models.Deal, error) {

	var d models.Deal
	if err := r.db.WithContext(ctx).First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// --------------------------------------------------
// Booking (create / update with conflict guard)
// --------------------------------------------------

// The availability check and the write happen inside one transaction. An
// advisory xact lock on (employee, day) serializes concurrent writers for
// the same schedule page, so the second writer re-reads after the first
// commit and is rejected deterministically. The partial unique index on
// (employee_id, start_time) remains as backstop.

func (r *BookingGormRepository) CreateBookingIfAvailable(
	ctx context.Context,
	b *models.Booking,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockEmployeeDay(tx, b.EmployeeID, b.StartTime); err != nil {
			return err
		}

		if err := assertNoOverlap(tx, b, 0); err != nil {
			return err
		}

		if err := tx.Create(b).Error; err != nil {
			if isUniqueViolation(err) {
				return httperr.ErrBusiness("slot_unavailable")
			}
			return err
		}
		return nil
	})
}

func (r *BookingGormRepository) UpdateBookingIfAvailable(
	ctx context.Context,
	b *models.Booking,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockEmployeeDay(tx, b.EmployeeID, b.StartTime); err != nil {
			return err
		}

		if err := assertNoOverlap(tx, b, b.ID); err != nil {
			return err
		}

		if err := tx.Save(b).Error; err != nil {
			if isUniqueViolation(err) {
				return httperr.ErrBusiness("slot_unavailable")
			}
			return err
		}
		return nil
	})
}

func lockEmployeeDay(tx *gorm.DB, employeeID uint, start time.Time) error {
	day := int32(start.Unix() / 86400)
	return tx.Exec(
		"SELECT pg_advisory_xact_lock(?, ?)",
		int32(employeeID), day,
	).Error
}

func assertNoOverlap(tx *gorm.DB, b *models.Booking, excludeID uint) error {
	q := tx.Model(&models.Booking{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where(
			"employee_id = ? AND status <> ? AND start_time < ? AND end_time > ?",
			b.EmployeeID,
			string(domain.StatusCancelled),
			b.EndTime,
			b.StartTime,
		)

	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var ids []uint
	if err := q.Find(&ids).Error; err != nil {
		return err
	}

	if len(ids) > 0 {
		return httperr.ErrBusiness("slot_unavailable")
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// --------------------------------------------------
// Booking (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) GetBookingForCustomer(
	ctx context.Context,
	id uint,
	customerID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ? AND customer_id = ?", id, customerID).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) ListBusyIntervals(
	ctx context.Context,
	employeeID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]domain.Interval, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Select("start_time", "end_time").
		Where(
			"employee_id = ? AND status <> ? AND start_time < ? AND end_time > ?",
			employeeID, string(domain.StatusCancelled), dayEnd, dayStart,
		).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	busy := make([]domain.Interval, 0, len(bookings))
	for _, b := range bookings {
		busy = append(busy, domain.Interval{
			Start: b.StartTime,
			End:   b.EndTime,
		})
	}

	return busy, nil
}

// --------------------------------------------------
// Listings / dashboard
// --------------------------------------------------

func (r *BookingGormRepository) ListBookingsForPeriod(
	ctx context.Context,
	employeeID *uint,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Employee").
		Preload("Service").
		Where("start_time >= ? AND start_time < ?", start, end)

	if employeeID != nil {
		q = q.Where("employee_id = ?", *employeeID)
	}

	var bookings []models.Booking
	if err := q.Order("start_time ASC").Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsForCustomer(
	ctx context.Context,
	customerID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("Service").
		Where("customer_id = ?", customerID).
		Order("start_time DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) CountBookingsByStatus(
	ctx context.Context,
) (map[domain.Status]int64, error) {

	type row struct {
		Status string
		Total  int64
	}

	var rows []row
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[domain.Status]int64, len(rows))
	for _, r := range rows {
		counts[domain.Status(r.Status)] = r.Total
	}

	return counts, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
