package booking

import (
	"time"

	"github.com/bellamoda/salon-booking/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Confirm(b *models.Booking, now time.Time) error {
	if err := CanTransition(Status(b.Status), StatusConfirmed); err != nil {
		return err
	}

	b.Status = string(StatusConfirmed)
	b.ConfirmedAt = &now
	return nil
}

func Complete(b *models.Booking, now time.Time) error {
	if err := CanTransition(Status(b.Status), StatusCompleted); err != nil {
		return err
	}

	b.Status = string(StatusCompleted)
	b.CompletedAt = &now
	return nil
}

func Cancel(b *models.Booking, now time.Time) error {
	if err := CanTransition(Status(b.Status), StatusCancelled); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	b.CancelledAt = &now
	return nil
}
