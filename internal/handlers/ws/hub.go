package ws

import (
	"encoding/json"
	"log"
	"sync"

	roomService "github.com/parlorgames/bingohall/internal/services/room"
)

// Hub tracks which clients are subscribed to which rooms and fans events
// out to them. It is the concrete Broadcaster behind the room service.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]bool
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[*Client]bool),
	}
}

// Subscribe adds a client to a room's fanout set
func (h *Hub) Subscribe(roomID string, c *Client) {
	h.mu.Lock()
	clients, ok := h.rooms[roomID]
	if !ok {
		clients = make(map[*Client]bool)
		h.rooms[roomID] = clients
	}
	clients[c] = true
	h.mu.Unlock()
}

// RemoveClient drops a client from every room it subscribed to
func (h *Hub) RemoveClient(c *Client) {
	h.mu.Lock()
	for roomID, clients := range h.rooms {
		if clients[c] {
			delete(clients, c)
			if len(clients) == 0 {
				delete(h.rooms, roomID)
			}
		}
	}
	h.mu.Unlock()
}

// BroadcastToRoom implements room.Broadcaster. The event is marshalled once
// and queued on every subscriber's send channel; each channel is drained by
// a single write pump, so a room's events reach each client in publish
// order.
func (h *Hub) BroadcastToRoom(roomID string, event *roomService.Event) {
	b, err := json.Marshal(event)
	if err != nil {
		log.Printf("failed to marshal %s event for room %s: %v", event.Type, roomID, err)
		return
	}

	h.mu.RLock()
	for c := range h.rooms[roomID] {
		c.enqueue(b)
	}
	h.mu.RUnlock()
}
