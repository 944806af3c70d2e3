package main

import (
	"fmt"
	"log"

	"github.com/MDAMANAHMAD/Roam-Heaven/config"
	"github.com/MDAMANAHMAD/Roam-Heaven/models"
	"github.com/MDAMANAHMAD/Roam-Heaven/storage"
)

// Wipes and reloads the demo listing catalog, including dependent reviews
// and bookings.
func main() {
	config.Load()
	storage.InitializeDB()

	if err := storage.DB.Where("1 = 1").Delete(&models.Review{}).Error; err != nil {
		log.Fatalf("Error clearing reviews: %v", err)
	}
	if err := storage.DB.Where("1 = 1").Delete(&models.Booking{}).Error; err != nil {
		log.Fatalf("Error clearing bookings: %v", err)
	}
	if err := storage.DB.Where("1 = 1").Delete(&models.Listing{}).Error; err != nil {
		log.Fatalf("Error clearing listings: %v", err)
	}

	for _, l := range storage.DemoListings {
		listing := l
		if err := storage.DB.Create(&listing).Error; err != nil {
			log.Fatalf("Error seeding listing %q: %v", listing.Title, err)
		}
	}

	fmt.Println("data was initialized")
}
