package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/skypop/backend/internal/arena"
	"github.com/skypop/backend/internal/ws"
)

// HandleGameWebSocket upgrades the connection and runs a game session on it.
func HandleGameWebSocket(mgr *arena.Manager) gin.HandlerFunc {
	return ws.HandleSessionWebSocket(mgr)
}
