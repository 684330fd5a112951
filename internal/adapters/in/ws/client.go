package ws

import (
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	// writeWait is the deadline for a single write to the peer.
	writeWait = 10 * time.Second

	// pongWait is how long the connection may stay silent before it is
	// considered dead. Pings go out at pingPeriod to keep it alive.
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	// sendBufferSize bounds the per-connection outbound queue. When the
	// buffer is full the hub drops events instead of blocking.
	sendBufferSize = 64
)

// Client is one live websocket connection with its room memberships.
type Client struct {
	id    uuid.UUID
	conn  *websocket.Conn
	rooms []string
	send  chan []byte
}

// newClient wraps an upgraded connection joined to the given rooms.
func newClient(conn *websocket.Conn, rooms []string) *Client {
	return &Client{
		id:    uuid.New(),
		conn:  conn,
		rooms: rooms,
		send:  make(chan []byte, sendBufferSize),
	}
}

// readPump drains inbound frames until the connection closes, then removes
// the client from the hub. Clients send nothing after the handshake, so the
// pump only services control frames and detects disconnects.
func (c *Client) readPump(hub *Hub) {
	defer func() {
		hub.unregister(c)
		close(c.send)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(4096)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writePump forwards queued messages to the peer and keeps the connection
// alive with periodic pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
