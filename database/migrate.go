// database/migrate.go - Database Migration Runner
package database

import (
	"log"
	"walk30/models"
)

// RunMigrations runs all database migrations
func RunMigrations() {
	db := GetDB()
	log.Println("🔄 Running database migrations...")

	if err := db.AutoMigrate(
		&models.User{},
		&models.Activity{},
		&models.Team{},
		&models.TeamMember{},
	); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	createIndexes()

	log.Println("✅ All migrations completed successfully")
}

// createIndexes creates indexes beyond what AutoMigrate derives from tags
func createIndexes() {
	db := GetDB()
	log.Println("Creating indexes...")

	// Activity indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_activities_user ON activities(user_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_activities_user_date ON activities(user_id, date DESC)")

	// Team indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_teams_creator ON teams(creator_id)")
	db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_teams_code ON teams(code)")

	// Team member indexes: one membership row per user, looked up both ways
	db.Exec("CREATE INDEX IF NOT EXISTS idx_team_members_team ON team_members(team_id)")
	db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_team_members_user ON team_members(user_id)")

	log.Println("✅ Indexes created successfully")
}
