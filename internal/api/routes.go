package api

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/skypop/backend/internal/api/handlers"
	"github.com/skypop/backend/internal/arena"
	"github.com/skypop/backend/internal/config"
	"github.com/skypop/backend/internal/middleware"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, mgr *arena.Manager, cfg *config.Config) {
	router.Use(middleware.CORSMiddleware(cfg))

	if cfg.Environment != "production" {
		router.Use(func(c *gin.Context) {
			// Aggressive no-cache for development
			c.Header("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
			c.Header("Pragma", "no-cache")
			c.Header("Expires", "0")
			c.Next()
		})
		log.Println("[DEV MODE] Aggressive no-cache headers enabled for all routes")
	}

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", handlers.HealthCheck)

		// Live session listing for the HUD/ops view
		v1.GET("/sessions", handlers.ListSessions(mgr))

		// Game endpoints
		game := v1.Group("/game")
		game.Use(middleware.WebSocketCORSCheck(cfg))
		{
			game.GET("/ws", handlers.HandleGameWebSocket(mgr))
		}
	}
}
