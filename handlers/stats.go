// handlers/stats.go - User Statistics HTTP Handler
package handlers

import (
	"walk30/middleware"

	"github.com/gofiber/fiber/v2"
)

// GetStats returns the caller's derived activity statistics
// GET /api/stats
func GetStats(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	stats, err := activityService.GetUserStats(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Internal server error"})
	}

	return c.JSON(stats)
}
