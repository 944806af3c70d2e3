package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking is a confirmed reservation of a listing for a date range and guest
// count. TotalPrice is always the server-side recompute, never the value the
// client sent.
type Booking struct {
	gorm.Model
	ListingID  uint      `json:"listingID" gorm:"not null;index"`
	UserID     uint      `json:"userID" gorm:"not null;index"`
	CheckIn    time.Time `json:"checkIn"`
	CheckOut   time.Time `json:"checkOut"`
	Guests     int       `json:"guests"`
	TotalPrice float32   `json:"totalPrice"`

	Listing *Listing `json:"listing,omitempty" gorm:"foreignKey:ListingID"`
	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
