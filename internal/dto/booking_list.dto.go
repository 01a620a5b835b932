package dto

import (
	"math"
	"time"
)

type BookingListDTO struct {
	ID           uint      `json:"id"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Status       string    `json:"status"`
	CustomerName string    `json:"customer_name,omitempty"`
	EmployeeName string    `json:"employee_name"`
	ServiceName  string    `json:"service_name"`
	Price        float64   `json:"price"`
	Notes        string    `json:"notes,omitempty"`
}

type BookingCountsDTO struct {
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Completed int64 `json:"completed"`
	Cancelled int64 `json:"cancelled"`
	Total     int64 `json:"total"`
}

// Price2 rounds a price for display. Internal math keeps full precision.
func Price2(v float64) float64 {
	return math.Round(v*100) / 100
}
