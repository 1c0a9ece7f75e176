package notify

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/doctrack-io/doctrackgo/internal/models"
)

// Hub maintains the set of connected clients and pushes committed
// notifications to them. Delivery is best effort: the notification row
// is already persisted, the push is just a nudge for open dashboards.
type Hub struct {
	// Registered connections: client id -> connection
	clients map[uint]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uint]*Client),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			// A client reconnecting replaces its old connection
			if old, ok := h.clients[client.ClientID]; ok {
				close(old.send)
				delete(h.clients, client.ClientID)
			}
			h.clients[client.ClientID] = client
			log.Printf("🔔 Client connected: %d", client.ClientID)
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if current, ok := h.clients[client.ClientID]; ok && current == client {
				delete(h.clients, client.ClientID)
				close(client.send)
				log.Printf("🔕 Client disconnected: %d", client.ClientID)
			}
			h.mu.Unlock()
		}
	}
}

// Push sends a notification to a connected client. Returns silently if
// the client is offline or its buffer is full.
func (h *Hub) Push(clientID uint, notification *models.ClientNotification) {
	h.mu.RLock()
	client, ok := h.clients[clientID]
	h.mu.RUnlock()

	if !ok {
		return
	}

	msg, err := json.Marshal(map[string]interface{}{
		"type":         "notification",
		"notification": notification,
	})
	if err != nil {
		log.Printf("Error marshaling notification: %v", err)
		return
	}

	select {
	case client.send <- msg:
	default:
		// Buffer full or client dead
	}
}
