package models

import "gorm.io/gorm"

// Roles form a closed set; anything else is rejected at the boundary.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

func IsValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

type User struct {
	gorm.Model
	Username string    `json:"username" gorm:"uniqueIndex;not null"`
	Email    string    `json:"email" gorm:"uniqueIndex;not null"`
	Password string    `json:"-"` // bcrypt hash, never the plaintext
	Role     string    `json:"role" gorm:"type:varchar(20);default:user;index"` // user, admin
	Bookings []Booking `json:"bookings,omitempty" gorm:"foreignKey:UserID"`
}
