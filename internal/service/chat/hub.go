// Package chat implements the realtime broadcast layer: a registry of
// live websocket connections and a fan-out router over them. Delivery is
// best-effort and fire-and-forget; nothing is persisted or replayed.
package chat

import (
	"log"
	"sync"

	"github.com/crisisconnect/backend/internal/model/chat"
)

// Hub tracks the set of currently open connections and fans published
// messages out to them. Mutations are serialized by the mutex; a
// broadcast works from a point-in-time snapshot so a slow receiver never
// blocks registration or unregistration of others.
type Hub struct {
	mu      sync.Mutex
	clients map[*Client]struct{}
}

// NewHub returns an empty Hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]struct{})}
}

// Register adds a client to the active set. Registering a client that is
// already present leaves the set unchanged.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		return
	}
	h.clients[c] = struct{}{}
	log.Printf("[chat] client connected: %s (active=%d)", c.ID, len(h.clients))
}

// Unregister removes a client and closes its send channel. It is
// idempotent: duplicate disconnect notifications and unknown clients are
// no-ops.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	c.closeSend()
	log.Printf("[chat] client disconnected: %s (active=%d)", c.ID, len(h.clients))
}

// Count reports the number of active connections.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Publish delivers msg to every active client, skipping exclude when it
// is non-nil. Delivery per recipient is non-blocking: a client whose
// send buffer is full misses the message, which is logged and otherwise
// swallowed so the remaining recipients still receive it.
func (h *Hub) Publish(msg chat.Message, exclude *Client) {
	h.mu.Lock()
	snapshot := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		if c == exclude {
			continue
		}
		snapshot = append(snapshot, c)
	}
	h.mu.Unlock()

	for _, c := range snapshot {
		if !c.trySend(msg) {
			log.Printf("[chat] dropping message for client %s (slow or gone)", c.ID)
		}
	}
}
