// Package ws provides the realtime gateway: a websocket endpoint where
// admins, delivery persons and customers hold live connections, and a hub
// that routes named events to audience rooms.
//
// Rooms are plain strings ("admin", "delivery-3", "customer-7", "orders").
// Membership exists only while a connection is open; it is recomputed from
// scratch on every reconnect. Live delivery is best-effort; the persisted
// notification row is the durable fallback.
package ws

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// frame is the wire format for every server-to-client message.
type frame struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Hub is the connection registry. It tracks which clients are members of
// which rooms and implements ports.LivePublisher.
type Hub struct {
	mu     sync.RWMutex
	rooms  map[string]map[*Client]struct{}
	logger *slog.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		rooms:  make(map[string]map[*Client]struct{}),
		logger: logger.With("component", "ws-hub"),
	}
}

// register adds a client to every room it belongs to.
func (h *Hub) register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, room := range client.rooms {
		members, ok := h.rooms[room]
		if !ok {
			members = make(map[*Client]struct{})
			h.rooms[room] = members
		}
		members[client] = struct{}{}
	}
}

// unregister removes a client from all its rooms and drops empty rooms.
// Safe to call more than once for the same client.
func (h *Hub) unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, room := range client.rooms {
		members, ok := h.rooms[room]
		if !ok {
			continue
		}
		delete(members, client)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
}

// Publish sends a named event to every connection in the room. A room with no
// members is a no-op. Slow clients whose buffers are full are skipped: live
// delivery never blocks a command handler.
func (h *Hub) Publish(room string, event string, payload any) {
	message, err := json.Marshal(frame{Event: event, Data: payload})
	if err != nil {
		h.logger.Error("marshal event", "room", room, "event", event, "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.rooms[room] {
		select {
		case client.send <- message:
		default:
			h.logger.Warn("dropping event for slow client",
				"room", room, "event", event, "connection_id", client.id)
		}
	}
}

// RoomSize reports the current number of connections in a room.
func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}
