package handler

import (
	"context"
	"time"

	"gunsmith-backend/internal/catalog"
	"gunsmith-backend/internal/stats"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HealthHandler struct {
	pool   *pgxpool.Pool
	cat    *catalog.Catalog
	tuning *stats.Tuning
}

func NewHealthHandler(pool *pgxpool.Pool, cat *catalog.Catalog, tuning *stats.Tuning) *HealthHandler {
	return &HealthHandler{pool: pool, cat: cat, tuning: tuning}
}

func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Ready reports whether the server can actually serve: database
// reachable and game data loaded. The catalog and tuning are validated
// at boot, so their presence here doubles as a config sanity readout.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := h.pool.Ping(ctx); err != nil {
		return c.Status(503).JSON(fiber.Map{"status": "not ready", "error": "database unreachable"})
	}
	if h.cat == nil || len(h.cat.Parts) == 0 {
		return c.Status(503).JSON(fiber.Map{"status": "not ready", "error": "part catalog not loaded"})
	}

	return c.JSON(fiber.Map{
		"status":        "ready",
		"catalog_parts": len(h.cat.Parts),
		"base_damage":   h.tuning.BaseDamage,
	})
}
