// handlers/handlers.go - Service wiring for HTTP handlers
package handlers

import (
	"walk30/database"
	"walk30/services"
)

var (
	activityService    *services.ActivityService
	teamService        *services.TeamService
	leaderboardService *services.LeaderboardService
)

// InitHandlers initializes the domain services behind the HTTP handlers.
func InitHandlers() {
	db := database.GetDB()
	if db == nil {
		panic("Database not initialized before InitHandlers")
	}
	activityService = services.NewActivityService(db)
	teamService = services.NewTeamService(db)
	leaderboardService = services.NewLeaderboardService(db)
}
