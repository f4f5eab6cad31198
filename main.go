package main

import (
	"log"

	"snakescores/config"
	"snakescores/handlers"
	"snakescores/middleware"
	"snakescores/models"
	"snakescores/routes"
	"snakescores/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database models
	err = db.AutoMigrate(
		&models.Gamer{},
		&models.Score{},
		&models.AdminUser{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Load sample data once per process; duplicate handles from prior
	// runs are rejected by the uniqueness constraint, not re-inserted.
	if cfg.SeedData {
		services.SeedOnce(db)
	}

	// Initialize services
	gamerService := services.NewGamerService(db)
	scoreService := services.NewScoreService(db)
	adminService := services.NewAdminService(db)

	// Initialize leaderboard hub
	hub := services.NewHub(scoreService)
	go hub.Run()

	// Initialize handlers
	gamerHandler := handlers.NewGamerHandler(gamerService, hub)
	scoreHandler := handlers.NewScoreHandler(scoreService, gamerService, hub)
	adminHandler := handlers.NewAdminHandler(adminService)

	// Setup Gin router
	router := gin.Default()

	// Add CORS middleware
	router.Use(middleware.CORS())

	// Setup routes
	routes.SetupRoutes(router, gamerHandler, scoreHandler, adminHandler, hub)

	// Start server
	log.Printf("Server starting on %s", cfg.Address())
	if err := router.Run(cfg.Address()); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
