package routes

import (
	"log"
	"net/http"

	"snakescores/handlers"
	"snakescores/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

func SetupRoutes(
	router *gin.Engine,
	gamerHandler *handlers.GamerHandler,
	scoreHandler *handlers.ScoreHandler,
	adminHandler *handlers.AdminHandler,
	hub *services.Hub,
) {
	// API routes
	api := router.Group("/api")
	{
		gamers := api.Group("/gamers")
		{
			gamers.POST("/create", gamerHandler.CreateGamer)
			gamers.GET("/", gamerHandler.ListGamers)
			gamers.GET("/:id", gamerHandler.GetGamer)
			gamers.PUT("/:id", gamerHandler.UpdateGamer)
			gamers.DELETE("/:id", gamerHandler.DeleteGamer)
			gamers.POST("/authenticate", gamerHandler.Authenticate)
			gamers.GET("/:id/scores", scoreHandler.UserScores)
			gamers.GET("/:id/scores/highest", scoreHandler.HighestScore)
		}

		scores := api.Group("/scores")
		{
			scores.POST("/create", scoreHandler.CreateScore)
			scores.GET("/", scoreHandler.ListScores)
			scores.GET("/leaderboard", scoreHandler.Leaderboard)
		}

		admins := api.Group("/admins")
		{
			admins.POST("/create", adminHandler.CreateAdmin)
			admins.GET("/", adminHandler.ListAdmins)
			admins.GET("/:id", adminHandler.GetAdmin)
			admins.PUT("/:id", adminHandler.UpdateAdmin)
			admins.DELETE("/:id", adminHandler.DeleteAdmin)
			admins.POST("/authenticate", adminHandler.Authenticate)
		}
	}

	// WebSocket endpoint for live leaderboard updates
	router.GET("/ws/leaderboard", func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("WebSocket upgrade failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade connection"})
			return
		}
		hub.RegisterClient(conn)
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
