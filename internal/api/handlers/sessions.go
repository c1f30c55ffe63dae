package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skypop/backend/internal/arena"
)

// ListSessions returns every live session with its phase and score.
func ListSessions(mgr *arena.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessions := mgr.List()
		c.JSON(http.StatusOK, gin.H{
			"count":    len(sessions),
			"sessions": sessions,
		})
	}
}
