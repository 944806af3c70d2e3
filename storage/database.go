package storage

import (
	"log"

	"github.com/MDAMANAHMAD/Roam-Heaven/config"
	"github.com/MDAMANAHMAD/Roam-Heaven/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func connectToDB() *gorm.DB {
	dsn := config.C.DBConnectionString
	if dsn == "" {
		log.Panic("DB_CONNECTION_STRING environment variable is required")
	}

	db, dbError := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if dbError != nil {
		log.Panic("error connecting to db: " + dbError.Error())
	}

	DB = db
	return db
}

func PerformMigrations(db *gorm.DB) {
	db.AutoMigrate(
		&models.User{},
		&models.Listing{},
		&models.Review{},
		&models.Booking{},
		&models.AuditLog{},
	)
}

func InitializeDB() *gorm.DB {
	db := connectToDB()
	PerformMigrations(db)
	return db
}
