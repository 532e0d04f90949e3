package handler

import (
	"errors"
	"log"

	"gunsmith-backend/internal/model"
	"gunsmith-backend/internal/service"
	"gunsmith-backend/internal/stats"

	"github.com/gofiber/fiber/v2"
)

type ArmoryHandler struct {
	armorySvc *service.ArmoryService
}

func NewArmoryHandler(armorySvc *service.ArmoryService) *ArmoryHandler {
	return &ArmoryHandler{armorySvc: armorySvc}
}

// POST /api/v1/armory/weapons
func (h *ArmoryHandler) Create(c *fiber.Ctx) error {
	playerID := c.Locals("player_id").(string)

	var req model.CreateWeaponRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	detail, err := h.armorySvc.Create(c.Context(), playerID, req.Name)
	if err != nil {
		return armoryError(c, err)
	}

	return c.Status(201).JSON(detail)
}

// GET /api/v1/armory/weapons
func (h *ArmoryHandler) List(c *fiber.Ctx) error {
	playerID := c.Locals("player_id").(string)

	details, err := h.armorySvc.List(c.Context(), playerID)
	if err != nil {
		return armoryError(c, err)
	}

	return c.JSON(fiber.Map{"weapons": details})
}

// GET /api/v1/armory/weapons/:id
func (h *ArmoryHandler) Get(c *fiber.Ctx) error {
	playerID := c.Locals("player_id").(string)

	detail, err := h.armorySvc.Get(c.Context(), playerID, c.Params("id"))
	if err != nil {
		return armoryError(c, err)
	}

	return c.JSON(detail)
}

// POST /api/v1/armory/weapons/:id/activate
func (h *ArmoryHandler) Activate(c *fiber.Ctx) error {
	playerID := c.Locals("player_id").(string)

	if err := h.armorySvc.Activate(c.Context(), playerID, c.Params("id")); err != nil {
		return armoryError(c, err)
	}

	return c.JSON(fiber.Map{"message": "weapon activated"})
}

// DELETE /api/v1/armory/weapons/:id
func (h *ArmoryHandler) Delete(c *fiber.Ctx) error {
	playerID := c.Locals("player_id").(string)

	if err := h.armorySvc.Delete(c.Context(), playerID, c.Params("id")); err != nil {
		return armoryError(c, err)
	}

	return c.JSON(fiber.Map{"message": "weapon deleted"})
}

// DELETE /api/v1/armory/weapons/:id/parts/:type
func (h *ArmoryHandler) RemovePart(c *fiber.Ctx) error {
	playerID := c.Locals("player_id").(string)
	partType := stats.PartType(c.Params("type"))

	detail, err := h.armorySvc.RemovePart(c.Context(), playerID, c.Params("id"), partType)
	if err != nil {
		return armoryError(c, err)
	}

	return c.JSON(detail)
}

// POST /api/v1/armory/weapons/:id/weld
func (h *ArmoryHandler) Weld(c *fiber.Ctx) error {
	playerID := c.Locals("player_id").(string)

	var req model.WeldRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	detail, err := h.armorySvc.AddWeld(c.Context(), playerID, c.Params("id"), req.Progress)
	if err != nil {
		return armoryError(c, err)
	}

	return c.JSON(detail)
}

// GET /api/v1/armory/weapons/:id/settings
func (h *ArmoryHandler) Settings(c *fiber.Ctx) error {
	playerID := c.Locals("player_id").(string)

	detail, err := h.armorySvc.Get(c.Context(), playerID, c.Params("id"))
	if err != nil {
		return armoryError(c, err)
	}

	return c.JSON(fiber.Map{"weapon_id": detail.Weapon.ID, "settings": detail.Settings})
}

// GET /api/v1/armory/active
func (h *ArmoryHandler) Active(c *fiber.Ctx) error {
	playerID := c.Locals("player_id").(string)

	detail, err := h.armorySvc.ActiveDetail(c.Context(), playerID)
	if err != nil {
		return armoryError(c, err)
	}

	return c.JSON(detail)
}

func armoryError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidWeaponName):
		return c.Status(400).JSON(fiber.Map{"error": "invalid weapon name"})
	case errors.Is(err, service.ErrInvalidPartType):
		return c.Status(400).JSON(fiber.Map{"error": "invalid part type"})
	case errors.Is(err, service.ErrNegativeProgress):
		return c.Status(400).JSON(fiber.Map{"error": "progress must not be negative"})
	case errors.Is(err, service.ErrEmptySlot):
		return c.Status(404).JSON(fiber.Map{"error": "slot is empty"})
	case errors.Is(err, service.ErrWeaponNotFound):
		return c.Status(404).JSON(fiber.Map{"error": "weapon not found"})
	case errors.Is(err, service.ErrNoActiveWeapon):
		return c.Status(404).JSON(fiber.Map{"error": "no active weapon"})
	default:
		log.Printf("[ARMORY ERROR] %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "internal server error"})
	}
}
