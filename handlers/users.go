// handlers/users.go - User Profile HTTP Handlers
package handlers

import (
	"walk30/database"
	"walk30/middleware"
	"walk30/models"

	"github.com/gofiber/fiber/v2"
)

// GetCurrentUser returns the authenticated user's profile
// GET /api/users/me
func GetCurrentUser(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	db := database.GetDB()

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"message": "User not found"})
	}

	return c.JSON(user)
}
