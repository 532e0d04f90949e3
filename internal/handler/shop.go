package handler

import (
	"errors"
	"log"

	"gunsmith-backend/internal/model"
	"gunsmith-backend/internal/service"
	"gunsmith-backend/internal/stats"

	"github.com/gofiber/fiber/v2"
)

type ShopHandler struct {
	shopSvc *service.ShopService
}

func NewShopHandler(shopSvc *service.ShopService) *ShopHandler {
	return &ShopHandler{shopSvc: shopSvc}
}

// GET /api/v1/shop/:type/offerings
func (h *ShopHandler) Offerings(c *fiber.Ctx) error {
	playerID := c.Locals("player_id").(string)
	partType := stats.PartType(c.Params("type"))

	offerings, err := h.shopSvc.Offerings(playerID, partType)
	if err != nil {
		return shopError(c, err)
	}

	return c.JSON(fiber.Map{"part_type": partType, "offerings": offerings})
}

// POST /api/v1/shop/:type/refresh
func (h *ShopHandler) Refresh(c *fiber.Ctx) error {
	playerID := c.Locals("player_id").(string)
	partType := stats.PartType(c.Params("type"))

	offerings, err := h.shopSvc.Refresh(playerID, partType)
	if err != nil {
		return shopError(c, err)
	}

	return c.JSON(fiber.Map{"part_type": partType, "offerings": offerings})
}

// POST /api/v1/shop/:type/buy
func (h *ShopHandler) Buy(c *fiber.Ctx) error {
	playerID := c.Locals("player_id").(string)
	partType := stats.PartType(c.Params("type"))

	var req model.BuyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	result, err := h.shopSvc.Buy(c.Context(), playerID, partType, req.OfferingIndex)
	if err != nil {
		return shopError(c, err)
	}

	return c.JSON(result)
}

func shopError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidPartType):
		return c.Status(400).JSON(fiber.Map{"error": "invalid part type"})
	case errors.Is(err, service.ErrOfferingNotFound):
		return c.Status(404).JSON(fiber.Map{"error": "offering not found"})
	case errors.Is(err, service.ErrNoActiveWeapon):
		return c.Status(409).JSON(fiber.Map{"error": "no active weapon to install into"})
	case errors.Is(err, service.ErrInsufficientCredits):
		return c.Status(400).JSON(fiber.Map{"error": "insufficient credits"})
	default:
		log.Printf("[SHOP ERROR] %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "internal server error"})
	}
}
