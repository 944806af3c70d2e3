package models

import "gorm.io/gorm"

// ListingImage keeps the nested image shape the web client reads
// (listing.image.url).
type ListingImage struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

type Listing struct {
	gorm.Model
	Title       string       `json:"title" gorm:"not null"`
	Description string       `json:"description" gorm:"type:text;not null"`
	Image       ListingImage `json:"image" gorm:"embedded;embeddedPrefix:image_"`
	Price       float32      `json:"price" gorm:"not null;check:price > 0"` // nightly price
	Location    string       `json:"location"`
	Country     string       `json:"country"`
	Reviews     []Review     `json:"reviews,omitempty" gorm:"foreignKey:ListingID"`
}
