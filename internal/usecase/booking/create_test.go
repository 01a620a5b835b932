package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	domain "github.com/bellamoda/salon-booking/internal/domain/booking"
	"github.com/bellamoda/salon-booking/internal/httperr"
	"github.com/bellamoda/salon-booking/internal/models"
	"github.com/bellamoda/salon-booking/internal/timezone"
)

func futureDate() string {
	return timezone.Now().AddDate(0, 0, 7).Format("2006-01-02")
}

func seedCatalog(r *fakeRepo) (*models.Service, *models.User) {
	svc := r.addService(models.Service{
		Name:        "Haircut",
		Price:       50,
		DurationMin: 60,
		Active:      true,
	})
	emp := r.addEmployee(models.User{
		Username:  "lena",
		FirstName: "Lena",
		LastName:  "Costa",
	})
	return svc, emp
}

func TestCreateBooking(t *testing.T) {
	repo := newFakeRepo()
	svc, emp := seedCatalog(repo)
	uc := NewCreateBooking(repo, nil, nil)

	b, err := uc.Execute(context.Background(), CreateBookingInput{
		CustomerID: 42,
		ServiceID:  svc.ID,
		EmployeeID: emp.ID,
		Date:       futureDate(),
		Time:       "10:00",
		Notes:      "first visit",
	})

	assert.NoError(t, err)
	assert.NotZero(t, b.ID)
	assert.Equal(t, string(domain.StatusPending), b.Status)
	assert.Equal(t, 50.0, b.Price)
	assert.Equal(t, 60*time.Minute, b.EndTime.Sub(b.StartTime))
	assert.Nil(t, b.DealID)
}

func TestCreateBookingConflict(t *testing.T) {
	repo := newFakeRepo()
	svc, emp := seedCatalog(repo)
	uc := NewCreateBooking(repo, nil, nil)

	in := CreateBookingInput{
		CustomerID: 42,
		ServiceID:  svc.ID,
		EmployeeID: emp.ID,
		Date:       futureDate(),
		Time:       "10:00",
	}

	_, err := uc.Execute(context.Background(), in)
	assert.NoError(t, err)

	// Same slot, second customer.
	in.CustomerID = 43
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "slot_unavailable"))

	// Overlapping but not identical start also loses.
	in.Time = "10:30"
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "slot_unavailable"))

	// Back-to-back is fine.
	in.Time = "11:00"
	_, err = uc.Execute(context.Background(), in)
	assert.NoError(t, err)
}

func TestCreateBookingValidation(t *testing.T) {
	repo := newFakeRepo()
	svc, emp := seedCatalog(repo)
	inactive := repo.addService(models.Service{Name: "Old perm", Price: 30, DurationMin: 30})
	uc := NewCreateBooking(repo, nil, nil)
	ctx := context.Background()

	base := CreateBookingInput{
		CustomerID: 42,
		ServiceID:  svc.ID,
		EmployeeID: emp.ID,
		Date:       futureDate(),
		Time:       "10:00",
	}

	cases := []struct {
		name string
		mut  func(*CreateBookingInput)
		code string
	}{
		{"garbage time", func(in *CreateBookingInput) { in.Time = "25:99" }, "invalid_date_or_time"},
		{"past date", func(in *CreateBookingInput) { in.Date = "2020-01-01" }, "date_in_past"},
		{"unknown service", func(in *CreateBookingInput) { in.ServiceID = 999 }, "service_not_found"},
		{"inactive service", func(in *CreateBookingInput) { in.ServiceID = inactive.ID }, "service_not_found"},
		{"unknown employee", func(in *CreateBookingInput) { in.EmployeeID = 999 }, "employee_not_found"},
		{"before opening", func(in *CreateBookingInput) { in.Time = "08:00" }, "outside_opening_hours"},
		{"runs past closing", func(in *CreateBookingInput) { in.Time = "17:30" }, "outside_opening_hours"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := base
			tc.mut(&in)
			_, err := uc.Execute(ctx, in)
			assert.True(t, httperr.IsBusiness(err, tc.code), "got %v", err)
		})
	}
}

func TestCreateBookingDealPriceSnapshot(t *testing.T) {
	repo := newFakeRepo()
	svc, emp := seedCatalog(repo)
	uc := NewCreateBooking(repo, nil, nil)
	ctx := context.Background()

	now := timezone.Now()
	active := repo.addDeal(models.Deal{
		Title:       "Spring cut",
		ServiceID:   svc.ID,
		DiscountPct: 20,
		StartDate:   now.AddDate(0, 0, -1),
		EndDate:     now.AddDate(0, 0, 30),
	})

	in := CreateBookingInput{
		CustomerID: 42,
		ServiceID:  svc.ID,
		EmployeeID: emp.ID,
		Date:       futureDate(),
		Time:       "10:00",
		DealID:     &active.ID,
	}

	b, err := uc.Execute(ctx, in)
	assert.NoError(t, err)
	assert.Equal(t, 40.0, b.Price)
	assert.Equal(t, active.ID, *b.DealID)

	// The snapshot survives later price changes.
	svc.Price = 80
	got, err := repo.GetBooking(ctx, b.ID)
	assert.NoError(t, err)
	assert.Equal(t, 40.0, got.Price)
}

func TestCreateBookingDealRejections(t *testing.T) {
	repo := newFakeRepo()
	svc, emp := seedCatalog(repo)
	other := repo.addService(models.Service{Name: "Manicure", Price: 35, DurationMin: 45, Active: true})
	uc := NewCreateBooking(repo, nil, nil)
	ctx := context.Background()

	now := timezone.Now()
	otherDeal := repo.addDeal(models.Deal{
		ServiceID:   other.ID,
		DiscountPct: 10,
		StartDate:   now.AddDate(0, 0, -1),
		EndDate:     now.AddDate(0, 0, 30),
	})
	expired := repo.addDeal(models.Deal{
		ServiceID:   svc.ID,
		DiscountPct: 10,
		StartDate:   now.AddDate(0, 0, -60),
		EndDate:     now.AddDate(0, 0, -30),
	})
	missing := uint(999)

	base := CreateBookingInput{
		CustomerID: 42,
		ServiceID:  svc.ID,
		EmployeeID: emp.ID,
		Date:       futureDate(),
		Time:       "10:00",
	}

	cases := []struct {
		name string
		deal *uint
		code string
	}{
		{"unknown deal", &missing, "deal_not_found"},
		{"deal for another service", &otherDeal.ID, "deal_not_applicable"},
		{"expired deal", &expired.ID, "deal_not_active"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := base
			in.DealID = tc.deal
			_, err := uc.Execute(ctx, in)
			assert.True(t, httperr.IsBusiness(err, tc.code), "got %v", err)
		})
	}
}
