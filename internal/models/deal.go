package models

import "time"

// Deal is a time-boxed percentage discount on a single service.
// At most one deal per service may cover any given day.
type Deal struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title       string `gorm:"size:100;not null" json:"title"`
	Description string `gorm:"size:255" json:"description"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"service"`

	DiscountPct int `json:"discount_pct"`

	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
