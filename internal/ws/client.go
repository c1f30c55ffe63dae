package ws

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/skypop/backend/internal/arena"
	"github.com/skypop/backend/internal/game"
	"github.com/skypop/backend/internal/protocol"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 25 * time.Second
	maxMessageSize = 1 << 20
	sendBufferSize = 256
)

// Client wraps one websocket connection and implements arena.Conn. Outbound
// messages go through a buffered channel drained by writePump; a full buffer
// drops the message rather than stalling the session loop.
type Client struct {
	conn      *websocket.Conn
	send      chan []byte
	closeOnce sync.Once
}

func newClient(conn *websocket.Conn) *Client {
	return &Client{
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}
}

// Send queues a message for the write pump.
func (c *Client) Send(b []byte) error {
	select {
	case c.send <- b:
		return nil
	default:
		return fmt.Errorf("send buffer full")
	}
}

// Close stops the write pump, which closes the underlying connection.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		close(c.send)
	})
	return nil
}

// writePump writes queued messages to the connection and keeps it alive
// with periodic pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Session closed the client. Best-effort close frame.
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Printf("[WS] Write error: %v", err)
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump reads client messages and routes them into the session inbox
// until the connection drops.
func (c *Client) readPump(sess *arena.Session) {
	defer func() {
		sess.Enqueue(arena.LeaveCmd{})
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WS] Read error for session %s: %v", sess.ID, err)
			}
			return
		}

		env, err := protocol.DecodeEnvelope(msg)
		if err != nil {
			log.Printf("[WS] Bad envelope for session %s: %v", sess.ID, err)
			continue
		}

		cmd, err := commandFor(env)
		if err != nil {
			log.Printf("[WS] Bad %q payload for session %s: %v", env.T, sess.ID, err)
			continue
		}
		if !sess.Enqueue(cmd) {
			return
		}
	}
}

// commandFor maps a decoded envelope to its arena command.
func commandFor(env protocol.Envelope) (any, error) {
	switch env.T {
	case protocol.MsgHello:
		h, err := protocol.DecodePayload[protocol.Hello](env)
		if err != nil {
			return nil, err
		}
		return arena.HelloCmd{Name: h.Name}, nil
	case protocol.MsgStart:
		return arena.StartCmd{}, nil
	case protocol.MsgReady:
		return arena.ReadyCmd{}, nil
	case protocol.MsgInitError:
		ie, err := protocol.DecodePayload[protocol.InitError](env)
		if err != nil {
			return nil, err
		}
		return arena.InitErrorCmd{Message: ie.Message}, nil
	case protocol.MsgFrame:
		f, err := protocol.DecodePayload[protocol.Frame](env)
		if err != nil {
			return nil, err
		}
		landmarks := make([]game.Landmark, len(f.Landmarks))
		for i, lm := range f.Landmarks {
			landmarks[i] = game.Landmark{X: lm.X, Y: lm.Y, Z: lm.Z}
		}
		return arena.FrameCmd{Landmarks: landmarks}, nil
	case protocol.MsgPointer:
		p, err := protocol.DecodePayload[protocol.Pointer](env)
		if err != nil {
			return nil, err
		}
		return arena.PointerCmd{X: p.X, Y: p.Y}, nil
	default:
		return nil, fmt.Errorf("unknown message type %q", env.T)
	}
}
