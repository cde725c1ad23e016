package infrastructure

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"dineHoursApi/internal/modules/hours/domain"
)

// Hub fans dataset events out to every connected websocket client.
type Hub struct {
	clients map[*Client]struct{}
	mu      sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]struct{})}
}

// Attach registers the client for broadcasts.
func (h *Hub) Attach(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	slog.Info("ws client attached", slog.String("subject", c.subject))
}

// Detach removes the client and closes its connection.
func (h *Hub) Detach(c *Client) {
	h.mu.Lock()
	_, known := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()
	if known {
		c.close()
		slog.Info("ws client detached", slog.String("subject", c.subject))
	}
}

// Broadcast sends the event to every attached client. Clients whose send
// buffer is full are detached rather than allowed to stall the broadcast.
func (h *Hub) Broadcast(_ context.Context, event *domain.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		slog.Error("broadcast marshal error", slog.Any("error", err))
		return
	}

	h.mu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		select {
		case c.send <- data:
		default:
			slog.Warn("ws send buffer full", slog.String("subject", c.subject))
			go h.Detach(c)
		}
	}
}
