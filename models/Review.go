package models

import "gorm.io/gorm"

type Review struct {
	gorm.Model
	ListingID uint   `json:"listingID" gorm:"not null;index"`
	UserID    uint   `json:"userID" gorm:"index"`
	Author    string `json:"author"` // display name, filled from the verified token
	Rating    int    `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment   string `json:"comment" gorm:"type:text"`
}
