package websocket

import (
	"errors"
	"sync"

	"github.com/rs/zerolog/log"
)

// ErrClientClosed is returned when attempting to send to a closed client
var ErrClientClosed = errors.New("client is closed")

// ClientInterface defines the interface that clients must implement
type ClientInterface interface {
	ID() string
	Send(data []byte) error
	Close() error
}

// Hub tracks connected WebSocket clients and fans events out to them.
// It is safe for concurrent use
type Hub struct {
	clients map[string]ClientInterface
	mu      sync.RWMutex
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]ClientInterface),
	}
}

// Register adds a client to the hub
func (h *Hub) Register(client ClientInterface) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client.ID()] = client

	log.Debug().
		Str("client_id", client.ID()).
		Msg("WebSocket client registered")
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(client ClientInterface) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.clients[client.ID()]; exists {
		delete(h.clients, client.ID())

		log.Debug().
			Str("client_id", client.ID()).
			Msg("WebSocket client unregistered")
	}
}

// Broadcast sends an event to every connected client
func (h *Hub) Broadcast(event Event) {
	data, err := event.ToJSON()
	if err != nil {
		log.Error().
			Err(err).
			Str("event_type", event.Type).
			Msg("Failed to serialize event")
		return
	}

	h.mu.RLock()
	if len(h.clients) == 0 {
		h.mu.RUnlock()
		return
	}

	// Copy clients to avoid holding lock during send
	clientsCopy := make([]ClientInterface, 0, len(h.clients))
	for _, client := range h.clients {
		clientsCopy = append(clientsCopy, client)
	}
	h.mu.RUnlock()

	for _, client := range clientsCopy {
		go func(c ClientInterface) {
			if err := c.Send(data); err != nil {
				log.Warn().
					Err(err).
					Str("client_id", c.ID()).
					Msg("Failed to send to client")
			}
		}(client)
	}

	log.Debug().
		Str("event_type", event.Type).
		Int("client_count", len(clientsCopy)).
		Msg("Broadcast event")
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// CloseAll disconnects every client, used on shutdown
func (h *Hub) CloseAll() {
	h.mu.Lock()
	clients := h.clients
	h.clients = make(map[string]ClientInterface)
	h.mu.Unlock()

	for _, c := range clients {
		if err := c.Close(); err != nil {
			log.Debug().Err(err).Str("client_id", c.ID()).Msg("Error closing WebSocket client")
		}
	}
}
