package notify

import "github.com/google/uuid"

const RelayChannel = relayChannel

// Listen registers a socketless client on h and returns what it receives.
func Listen(h *Hub, userID uuid.UUID) (<-chan []byte, func()) {
	c := &client{userID: userID, send: make(chan []byte, 8)}
	h.register(c)
	return c.send, func() { h.unregister(c) }
}
