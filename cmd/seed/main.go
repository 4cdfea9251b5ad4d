// cmd/seed/main.go - Demo data seeder
package main

import (
	"fmt"
	"log"
	"time"
	"walk30/database"
	"walk30/models"
	"walk30/services"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	database.InitDB()
	db := database.GetDB()

	// Idempotent: skip when any team already exists
	var teamCount int64
	db.Model(&models.Team{}).Count(&teamCount)
	if teamCount > 0 {
		log.Println("Database already seeded, nothing to do")
		return
	}

	log.Println("Seeding database...")

	email := fmt.Sprintf("demo_%s@walk30.local", uuid.New().String()[:8])
	demo := models.User{
		Username:    "demo-walker",
		Email:       &email,
		DisplayName: "Demo Walker",
		IsGuest:     false,
		CreatedAt:   time.Now(),
	}
	if err := db.Create(&demo).Error; err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}

	teams := services.NewTeamService(db)
	team, err := teams.CreateTeam(demo.ID, "The Walkie Talkies")
	if err != nil {
		log.Fatalf("Failed to create demo team: %v", err)
	}
	log.Printf("Created team %q with join code %s", team.Name, team.Code)

	// A trailing week of walks, 30-55 minutes each
	activities := services.NewActivityService(db)
	today := time.Now().UTC()
	for i := 0; i < 7; i++ {
		day := today.AddDate(0, 0, -i)
		_, err := activities.LogActivity(demo.ID, services.ActivityInput{
			Date:    day.Format("2006-01-02"),
			Minutes: 30 + (i*5)%26,
			Notes:   fmt.Sprintf("Walk day %d", i+1),
		})
		if err != nil {
			log.Fatalf("Failed to log demo activity: %v", err)
		}
	}

	log.Println("Database seeded successfully!")
}
