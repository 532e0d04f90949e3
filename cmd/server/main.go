package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gunsmith-backend/internal/catalog"
	"gunsmith-backend/internal/config"
	"gunsmith-backend/internal/database"
	"gunsmith-backend/internal/discord"
	"gunsmith-backend/internal/handler"
	"gunsmith-backend/internal/middleware"
	"gunsmith-backend/internal/repository"
	"gunsmith-backend/internal/service"
	"gunsmith-backend/internal/stats"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg := config.Load()

	// Game data
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("Failed to load part catalog: %v", err)
	}
	tuning, err := stats.LoadTuning(cfg.TuningPath)
	if err != nil {
		log.Fatalf("Failed to load tuning: %v", err)
	}

	// Database
	db, err := database.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(context.Background(), db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations applied successfully")

	// Repositories
	playerRepo := repository.NewPlayerRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	weaponRepo := repository.NewWeaponRepository(db)

	// Services
	armorySvc := service.NewArmoryService(weaponRepo, tuning)
	authSvc := service.NewAuthService(playerRepo, sessionRepo, armorySvc, cfg.JWTSecret)
	playerSvc := service.NewPlayerService(playerRepo)
	wsHub := service.NewWSHub()
	webhooks := service.NewDiscordWebhookService(cfg.DiscordWebhookStatus, cfg.DiscordWebhookDrops)
	gen := catalog.NewGenerator(cat, time.Now().UnixNano())
	shopSvc := service.NewShopService(gen, cat, cfg.ShopSlots, playerRepo, weaponRepo, armorySvc, wsHub, webhooks)

	// Discord bot (optional)
	bot, err := discord.NewBot(cfg.DiscordBotToken, cfg.DiscordGuildID, playerRepo, cat, wsHub)
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}
	defer bot.Stop()

	// Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
		BodyLimit:    1 * 1024 * 1024, // 1MB
	})

	app.Use(recover.New())
	app.Use(middleware.Logger())
	app.Use(middleware.CORS())

	// Health
	healthH := handler.NewHealthHandler(db, cat, tuning)
	app.Get("/health", healthH.Health)
	app.Get("/ready", healthH.Ready)

	// API v1
	v1 := app.Group("/api/v1")

	// Auth (public)
	authH := handler.NewAuthHandler(authSvc)
	auth := v1.Group("/auth")
	auth.Post("/register", middleware.RateLimit(5, time.Minute), authH.Register)
	auth.Post("/login", middleware.RateLimit(10, time.Minute), authH.Login)
	auth.Post("/refresh", middleware.RateLimit(20, time.Minute), authH.Refresh)
	auth.Post("/logout", authH.Logout)

	// Server-to-server (game server key auth) — registered BEFORE protected group
	server := v1.Group("/server", middleware.ServerKey(cfg.ServerKey))
	serverH := handler.NewServerHandler(authSvc, armorySvc)
	server.Post("/validate-token", serverH.ValidateToken)
	server.Get("/players/:id/settings", serverH.PlayerSettings)

	// Admin — registered BEFORE protected group
	admin := v1.Group("/admin", middleware.AdminKey(cfg.AdminKey))
	adminH := handler.NewAdminHandler(playerRepo, weaponRepo, wsHub)
	admin.Get("/stats", adminH.Stats)
	admin.Post("/announce", adminH.Announce)
	admin.Post("/players/:id/credits", adminH.GrantCredits)

	// JWT-protected routes (catch-all — must be LAST)
	protected := v1.Group("", middleware.Auth(cfg.JWTSecret))

	// Player
	playerH := handler.NewPlayerHandler(playerSvc)
	protected.Get("/player/me", playerH.Me)
	protected.Get("/player/profile/:id", playerH.GetProfile)

	// Shop
	shopH := handler.NewShopHandler(shopSvc)
	shop := protected.Group("/shop")
	shop.Get("/:type/offerings", shopH.Offerings)
	shop.Post("/:type/refresh", shopH.Refresh)
	shop.Post("/:type/buy", shopH.Buy)

	// Armory
	armoryH := handler.NewArmoryHandler(armorySvc)
	armory := protected.Group("/armory")
	armory.Get("/active", armoryH.Active)
	armory.Post("/weapons", armoryH.Create)
	armory.Get("/weapons", armoryH.List)
	armory.Get("/weapons/:id", armoryH.Get)
	armory.Delete("/weapons/:id", armoryH.Delete)
	armory.Post("/weapons/:id/activate", armoryH.Activate)
	armory.Delete("/weapons/:id/parts/:type", armoryH.RemovePart)
	armory.Post("/weapons/:id/weld", armoryH.Weld)
	armory.Get("/weapons/:id/settings", armoryH.Settings)

	// WebSocket
	wsH := handler.NewWSHandler(wsHub, authSvc)
	app.Get("/ws", wsH.Upgrade)

	// Start hub
	go wsHub.Run()

	webhooks.SendStatus("Gunsmith backend starting up")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	log.Printf("Gunsmith backend running on :%s (%s)", cfg.Port, cfg.Env)

	<-quit
	log.Println("Shutting down...")
	_ = app.ShutdownWithTimeout(5 * time.Second)
	wsHub.Shutdown()
	log.Println("Server stopped")
}
