package utils

import (
	"log"
	"time"

	"github.com/JJ-Data/Pulse-Flow-Gym-App/models"

	"gorm.io/gorm"
)

// SeedData loads the starter classes, plans and the admin account.
// Safe to run more than once.
func SeedData(db *gorm.DB) error {
	classes := []models.Class{
		{Name: "Morning Flow", Description: "Start your day with a calming yoga flow.", Trainer: "Sarah",
			Time: time.Date(2025, 1, 20, 6, 0, 0, 0, time.UTC), Duration: 60, Capacity: 20, Intensity: models.IntensityLow},
		{Name: "HIIT Pulse", Description: "High intensity interval training to get your heart pumping.", Trainer: "Mike",
			Time: time.Date(2025, 1, 20, 7, 30, 0, 0, time.UTC), Duration: 45, Capacity: 15, Intensity: models.IntensityHigh},
		{Name: "Power Lift", Description: "Strength training focusing on compound movements.", Trainer: "John",
			Time: time.Date(2025, 1, 20, 17, 0, 0, 0, time.UTC), Duration: 60, Capacity: 12, Intensity: models.IntensityHigh},
		{Name: "Evening Yoga", Description: "Unwind and stretch after a long day.", Trainer: "Sarah",
			Time: time.Date(2025, 1, 20, 19, 0, 0, 0, time.UTC), Duration: 60, Capacity: 20, Intensity: models.IntensityLow},
	}
	for i := range classes {
		if err := db.Where("name = ?", classes[i].Name).FirstOrCreate(&classes[i]).Error; err != nil {
			return err
		}
	}

	plans := []models.GymPlan{
		{Name: "Basic", Price: 15000, Duration: 1, Active: true},
		{Name: "Pro", Price: 35000, Duration: 3, Active: true},
		{Name: "Elite", Price: 120000, Duration: 12, Active: true},
	}
	plans[0].SetFeatures([]string{"Gym Access", "Locker Room"})
	plans[1].SetFeatures([]string{"Gym Access", "Locker Room", "All Classes"})
	plans[2].SetFeatures([]string{"Gym Access", "Locker Room", "All Classes", "Personal Trainer (2 sessions/mo)", "Spa Access"})
	for i := range plans {
		if err := db.Where("name = ?", plans[i].Name).
			Assign(plans[i]).
			FirstOrCreate(&plans[i]).Error; err != nil {
			return err
		}
	}

	hashed, err := HashPassword("Admin123$")
	if err != nil {
		return err
	}
	admin := models.User{
		Email:    "admin@pulseflowgym.com",
		Name:     "Admin User",
		Password: hashed,
		Role:     models.RoleAdmin,
	}
	if err := db.Where("email = ?", admin.Email).FirstOrCreate(&admin).Error; err != nil {
		return err
	}

	log.Println("Seeding finished")
	return nil
}
