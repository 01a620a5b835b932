package handlers

import (
	"time"

	"github.com/bellamoda/salon-booking/internal/timezone"
)

func parseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(),
	)
}

func midnight(t time.Time) time.Time {
	return time.Date(
		t.Year(), t.Month(), t.Day(),
		0, 0, 0, 0,
		t.Location(),
	)
}

// isPastDate reports whether the date lies before today, salon-local.
func isPastDate(date time.Time) bool {
	return date.Before(midnight(timezone.Now()))
}
