package handler

import (
	"encoding/json"
	"errors"
	"log"

	"gunsmith-backend/internal/model"
	"gunsmith-backend/internal/repository"
	"gunsmith-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

type AdminHandler struct {
	playerRepo *repository.PlayerRepository
	weaponRepo *repository.WeaponRepository
	hub        *service.WSHub
}

func NewAdminHandler(playerRepo *repository.PlayerRepository, weaponRepo *repository.WeaponRepository, hub *service.WSHub) *AdminHandler {
	return &AdminHandler{playerRepo: playerRepo, weaponRepo: weaponRepo, hub: hub}
}

// GET /api/v1/admin/stats
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	players, err := h.playerRepo.CountTotal(c.Context())
	if err != nil {
		log.Printf("[ADMIN ERROR] count players: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "internal server error"})
	}

	weapons, err := h.weaponRepo.CountTotal(c.Context())
	if err != nil {
		log.Printf("[ADMIN ERROR] count weapons: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "internal server error"})
	}

	return c.JSON(fiber.Map{
		"total_players": players,
		"total_weapons": weapons,
		"online":        h.hub.OnlineCount(),
	})
}

// POST /api/v1/admin/announce
func (h *AdminHandler) Announce(c *fiber.Ctx) error {
	var req model.WSAnnounce
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Message == "" {
		return c.Status(400).JSON(fiber.Map{"error": "message is required"})
	}

	data, err := json.Marshal(map[string]string{"message": req.Message})
	if err != nil {
		log.Printf("[ADMIN ERROR] encode announcement: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "internal server error"})
	}
	h.hub.Broadcast(&model.WSEvent{Type: "announce", Data: data})

	return c.JSON(fiber.Map{"message": "announcement sent"})
}

// POST /api/v1/admin/players/:id/credits
func (h *AdminHandler) GrantCredits(c *fiber.Ctx) error {
	var req model.GrantCreditsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	balance, err := h.playerRepo.AddCredits(c.Context(), c.Params("id"), req.Amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "player not found"})
		}
		log.Printf("[ADMIN ERROR] grant credits: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "internal server error"})
	}

	return c.JSON(fiber.Map{"player_id": c.Params("id"), "credits": balance})
}
