package models

import "time"

// ===============================
// Roles
// ===============================

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
	RoleCustomer Role = "customer"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleEmployee, RoleCustomer:
		return Role(s), true
	}
	return "", false
}

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Username  string `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email     string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	FirstName string `gorm:"size:50" json:"first_name"`
	LastName  string `gorm:"size:50" json:"last_name"`

	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`

	Role Role `gorm:"size:20;default:'customer'" json:"role"`

	// Position only applies to employees (e.g. "stylist", "nail technician")
	Position     string `gorm:"size:50" json:"position,omitempty"`
	ProfileImage string `gorm:"size:255" json:"profile_image,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
