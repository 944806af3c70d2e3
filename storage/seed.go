package storage

import (
	"log"

	"github.com/MDAMANAHMAD/Roam-Heaven/config"
	"github.com/MDAMANAHMAD/Roam-Heaven/models"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdminUser creates the bootstrap admin account once. Safe to call on
// every start; it is a no-op when the account already exists.
func SeedAdminUser() {
	adminEmail := config.C.EmailUser
	if adminEmail == "" {
		adminEmail = "admin@gmail.com"
	}

	var existing models.User
	if err := DB.Where("email = ?", adminEmail).First(&existing).Error; err == nil {
		return
	}

	hash, hashErr := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if hashErr != nil {
		log.Println("admin seeding error:", hashErr)
		return
	}

	admin := models.User{
		Username: "admin",
		Email:    adminEmail,
		Password: string(hash),
		Role:     models.RoleAdmin,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Println("Admin already exists or seeding error:", err)
		return
	}
	log.Printf("Admin user created: %s / admin123", adminEmail)
}

// DemoListings is the starter catalog loaded when the listings table is empty,
// and by the standalone reseed script.
var DemoListings = []models.Listing{
	{
		Title:       "Cozy Beachfront Cottage",
		Description: "Escape to this charming beachfront cottage for a relaxing getaway. Enjoy stunning ocean views right from your porch.",
		Image:       models.ListingImage{URL: "https://images.unsplash.com/photo-1552733407-5d5c46c3bb3b?q=80&w=800"},
		Price:       1500,
		Location:    "Malibu",
		Country:     "United States",
	},
	{
		Title:       "Modern Loft in Downtown",
		Description: "Stay in the heart of the city in this stylish loft apartment, walking distance from nightlife and museums.",
		Image:       models.ListingImage{URL: "https://images.unsplash.com/photo-1501785888041-af3ef285b470?q=80&w=800"},
		Price:       1200,
		Location:    "New York City",
		Country:     "United States",
	},
	{
		Title:       "Mountain Retreat",
		Description: "Unplug and unwind at this peaceful mountain retreat with hiking trails right outside the door.",
		Image:       models.ListingImage{URL: "https://images.unsplash.com/photo-1571896349842-33c89424de2d?q=80&w=800"},
		Price:       1000,
		Location:    "Aspen",
		Country:     "United States",
	},
	{
		Title:       "Historic Canal House",
		Description: "A beautifully restored 17th-century canal house with original beams and a private garden.",
		Image:       models.ListingImage{URL: "https://images.unsplash.com/photo-1524231757912-21f4fe3a7200?q=80&w=800"},
		Price:       2000,
		Location:    "Amsterdam",
		Country:     "Netherlands",
	},
	{
		Title:       "Tropical Villa with Pool",
		Description: "Private villa surrounded by rice paddies, with an infinity pool and open-air living room.",
		Image:       models.ListingImage{URL: "https://images.unsplash.com/photo-1566073771259-6a8506099945?q=80&w=800"},
		Price:       1800,
		Location:    "Ubud",
		Country:     "Indonesia",
	},
}

// SeedDemoListings loads the demo catalog when the table is empty.
func SeedDemoListings() {
	var count int64
	DB.Model(&models.Listing{}).Count(&count)
	if count > 0 {
		return
	}

	for _, l := range DemoListings {
		listing := l
		if err := DB.Create(&listing).Error; err != nil {
			log.Println("demo listing seeding error:", err)
		}
	}
	log.Printf("Seeded %d demo listings", len(DemoListings))
}
