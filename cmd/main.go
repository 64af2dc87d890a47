package main

import (
	"log"
	"os"

	"github.com/JJ-Data/Pulse-Flow-Gym-App/config"
	"github.com/JJ-Data/Pulse-Flow-Gym-App/routes"
	"github.com/JJ-Data/Pulse-Flow-Gym-App/utils"
)

func main() {
	config.InitDB()
	utils.InitMailer()
	utils.InitS3()

	if os.Getenv("SEED_DATA") == "true" {
		if err := utils.SeedData(config.DB); err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter()
	r.Run(":" + port)
}
