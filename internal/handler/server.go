package handler

import (
	"gunsmith-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ServerHandler serves trusted server-to-server endpoints, guarded by the
// X-Server-Key middleware. The range simulation server pulls a player's
// active weapon settings from here before spawning them into a session.
type ServerHandler struct {
	authSvc   *service.AuthService
	armorySvc *service.ArmoryService
}

func NewServerHandler(authSvc *service.AuthService, armorySvc *service.ArmoryService) *ServerHandler {
	return &ServerHandler{authSvc: authSvc, armorySvc: armorySvc}
}

// POST /api/v1/server/validate-token
func (h *ServerHandler) ValidateToken(c *fiber.Ctx) error {
	var req struct {
		Token string `json:"token"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	playerID, username, err := h.authSvc.ValidateAccessToken(req.Token)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"valid": false})
	}

	return c.JSON(fiber.Map{
		"valid":     true,
		"player_id": playerID,
		"username":  username,
	})
}

// GET /api/v1/server/players/:id/settings
func (h *ServerHandler) PlayerSettings(c *fiber.Ctx) error {
	detail, err := h.armorySvc.ActiveDetail(c.Context(), c.Params("id"))
	if err != nil {
		return armoryError(c, err)
	}

	return c.JSON(fiber.Map{
		"player_id": c.Params("id"),
		"weapon_id": detail.Weapon.ID,
		"settings":  detail.Settings,
	})
}
