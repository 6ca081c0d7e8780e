package database

import (
	"log"
	"os"

	"github.com/elitesugar/elitesugar-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDatabase() *gorm.DB {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	return db
}

func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Account{},
		&models.AccountPhoto{},
		&models.Person{},
		&models.PersonPhoto{},
		&models.Notification{},
		&models.AuthToken{},
		&models.AdminCode{},
		&models.MembershipPurchase{},
	)
}
