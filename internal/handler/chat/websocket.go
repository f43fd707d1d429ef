package chat

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	chatservice "github.com/crisisconnect/backend/internal/service/chat"
)

// Handler upgrades chat clients onto the broadcast hub.
//
// The chat room is anonymous: joining does not require a session token.
// Identity on the wire is just the self-reported sender label.
type Handler struct {
	hub      *chatservice.Hub
	upgrader websocket.Upgrader
}

// New creates a websocket chat handler backed by hub.
func New(hub *chatservice.Hub) *Handler {
	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes registers the websocket endpoint.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/ws", h.handleWebSocket)
}

// handleWebSocket upgrades the connection, registers it with the hub
// and runs the read/write pumps until the client disconnects.
func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[websocket] upgrade failed: %v", err)
		return
	}

	client := chatservice.NewClient(h.hub, conn)
	h.hub.Register(client)

	go client.WritePump()
	client.ReadPump()
}
