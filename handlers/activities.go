// handlers/activities.go - Activity Logging HTTP Handlers
package handlers

import (
	"walk30/middleware"
	"walk30/services"

	"github.com/gofiber/fiber/v2"
)

// LogActivity records one walking session
// POST /api/activities
func LogActivity(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var input services.ActivityInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid request body"})
	}

	activity, err := activityService.LogActivity(userID, input)
	if err != nil {
		if services.IsValidation(err) {
			return c.Status(400).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"message": "Internal server error"})
	}

	return c.Status(201).JSON(activity)
}

// ListActivities returns the caller's sessions, newest first
// GET /api/activities?limit=N
func ListActivities(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	limit := c.QueryInt("limit", services.DefaultActivityLimit)

	activities, err := activityService.GetUserActivities(userID, limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Internal server error"})
	}

	return c.JSON(activities)
}
