// handlers/teams.go - Team Membership HTTP Handlers
package handlers

import (
	"errors"
	"time"
	"walk30/middleware"
	"walk30/services"

	"github.com/gofiber/fiber/v2"
)

type memberInfo struct {
	ID       uint      `json:"id"`
	Name     string    `json:"name"`
	Avatar   string    `json:"avatar,omitempty"`
	JoinedAt time.Time `json:"joinedAt"`
}

// CreateTeam creates a team and auto-joins the creator
// POST /api/teams
func CreateTeam(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid request body"})
	}

	team, err := teamService.CreateTeam(userID, req.Name)
	if err != nil {
		return teamError(c, err)
	}

	return c.Status(201).JSON(team)
}

// JoinTeam enrolls the caller in the team behind a join code
// POST /api/teams/join
func JoinTeam(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var req struct {
		Code string `json:"code"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid request body"})
	}

	team, err := teamService.JoinTeam(userID, req.Code)
	if err != nil {
		return teamError(c, err)
	}

	return c.JSON(team)
}

// GetMyTeam returns the caller's team with its member list, or null
// GET /api/teams/me
func GetMyTeam(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	team, err := teamService.GetUserTeam(userID)
	if err != nil {
		if errors.Is(err, services.ErrNoTeam) {
			return c.JSON(nil)
		}
		return c.Status(500).JSON(fiber.Map{"message": "Internal server error"})
	}

	members := make([]memberInfo, 0, len(team.Members))
	for _, m := range team.Members {
		info := memberInfo{ID: m.UserID, JoinedAt: m.JoinedAt}
		if m.User != nil {
			info.Name = m.User.Name()
			info.Avatar = m.User.Avatar
		}
		members = append(members, info)
	}

	return c.JSON(fiber.Map{
		"id":          team.ID,
		"name":        team.Name,
		"code":        team.Code,
		"creatorId":   team.CreatorID,
		"createdAt":   team.CreatedAt,
		"members":     members,
		"memberCount": len(members),
	})
}

// teamError maps team service failures onto the response taxonomy.
func teamError(c *fiber.Ctx, err error) error {
	switch {
	case services.IsValidation(err):
		return c.Status(400).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, services.ErrTeamNotFound):
		return c.Status(404).JSON(fiber.Map{"message": "Team not found"})
	case errors.Is(err, services.ErrAlreadyInTeam):
		return c.Status(400).JSON(fiber.Map{"message": "You are already in a team"})
	default:
		return c.Status(500).JSON(fiber.Map{"message": "Internal server error"})
	}
}
