// handlers/leaderboard.go - Leaderboard HTTP Handler
package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// GetLeaderboard returns the top-50 ranked list
// GET /api/leaderboard?type=individual|team
func GetLeaderboard(c *fiber.Ctx) error {
	leaderboardType := c.Query("type", "individual")

	var (
		entries interface{}
		err     error
	)
	if leaderboardType == "team" {
		entries, err = leaderboardService.Team()
	} else {
		entries, err = leaderboardService.Individual()
	}

	if err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Internal server error"})
	}

	return c.JSON(entries)
}
