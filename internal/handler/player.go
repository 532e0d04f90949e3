package handler

import (
	"gunsmith-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type PlayerHandler struct {
	playerSvc *service.PlayerService
}

func NewPlayerHandler(playerSvc *service.PlayerService) *PlayerHandler {
	return &PlayerHandler{playerSvc: playerSvc}
}

func (h *PlayerHandler) Me(c *fiber.Ctx) error {
	playerID := c.Locals("player_id").(string)

	player, err := h.playerSvc.Get(c.Context(), playerID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to load player"})
	}

	return c.JSON(player)
}

func (h *PlayerHandler) GetProfile(c *fiber.Ctx) error {
	profile, err := h.playerSvc.GetProfile(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "player not found"})
	}

	return c.JSON(profile)
}
