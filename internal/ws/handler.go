package ws

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/skypop/backend/internal/arena"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // origin is validated by the websocket CORS middleware
	},
}

// HandleSessionWebSocket upgrades the request and binds the connection to a
// fresh game session. The handler blocks on the read pump for the life of
// the connection.
func HandleSessionWebSocket(mgr *arena.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("[WS] Upgrade error: %v", err)
			return
		}

		client := newClient(conn)
		sess := mgr.Create(client)
		log.Printf("[WS] Client connected, session %s", sess.ID)

		go client.writePump()
		client.readPump(sess)
		log.Printf("[WS] Client disconnected, session %s", sess.ID)
	}
}
