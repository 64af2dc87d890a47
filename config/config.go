package config

import (
	"fmt"
	"log"
	"os"

	"github.com/JJ-Data/Pulse-Flow-Gym-App/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := MigrateAll(DB); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}

// MigrateAll is shared with the test helpers, which run it against sqlite.
func MigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.StreakLog{},
		&models.Class{},
		&models.Booking{},
		&models.GymPlan{},
		&models.Subscription{},
		&models.Payment{},
		&models.Feedback{},
		&models.Announcement{},
	)
}
