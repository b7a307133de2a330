package notify

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/saulo-duarte/neurobridge-lambda/internal/config"
)

type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

type Notification struct {
	Type        string  `json:"type"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Variant     Variant `json:"variant"`
	Data        any     `json:"data,omitempty"`
}

type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, n Notification) error
}

type client struct {
	userID uuid.UUID
	send   chan []byte
}

// Hub tracks the websocket connections of this process by user.
type Hub struct {
	mu      sync.RWMutex
	clients map[uuid.UUID]map[*client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: map[uuid.UUID]map[*client]struct{}{}}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.clients[c.userID]
	if !ok {
		set = map[*client]struct{}{}
		h.clients[c.userID] = set
	}
	set[c] = struct{}{}
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.clients[c.userID]
	if !ok {
		return
	}
	if _, ok := set[c]; ok {
		delete(set, c)
		close(c.send)
	}
	if len(set) == 0 {
		delete(h.clients, c.userID)
	}
}

func (h *Hub) Connections(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

// Notify delivers n to every local connection of userID. Slow connections
// whose buffer is full miss the message.
func (h *Hub) Notify(ctx context.Context, userID uuid.UUID, n Notification) error {
	if n.Variant == "" {
		n.Variant = VariantDefault
	}
	data, err := json.Marshal(n)
	if err != nil {
		return err
	}
	h.deliver(ctx, userID, data)
	return nil
}

func (h *Hub) deliver(ctx context.Context, userID uuid.UUID, data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		select {
		case c.send <- data:
		default:
			config.WithContext(ctx).WithField("user_id", userID).Warn("Notification buffer full, dropping message")
		}
	}
}
