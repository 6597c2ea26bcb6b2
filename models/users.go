package models

import "time"

const (
	RoleStudent = "student"
	RoleStaff   = "staff"
)

type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Username  string `gorm:"type:varchar(255);unique;not null" json:"username"`
	Password  string `gorm:"type:varchar(255);not null" json:"-"`
	Role      string `gorm:"type:varchar(20);not null" json:"role"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidRole reports whether the role is one the app accepts at registration.
func ValidRole(role string) bool {
	return role == RoleStudent || role == RoleStaff
}
