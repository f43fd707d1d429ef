package chatbot

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/crisisconnect/backend/pkg/utils"
)

// Replier produces a bounded assistant reply for a user message.
type Replier interface {
	Reply(ctx context.Context, userMessage string) (string, error)
}

// Handler serves the safety-assistant chatbot endpoint.
type Handler struct {
	replier Replier
}

// New creates the chatbot handler. replier may be nil when the
// generative-text service is not configured.
func New(replier Replier) *Handler {
	return &Handler{replier: replier}
}

// RegisterRoutes registers the chatbot route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chatbot", h.handleChat)
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	if h.replier == nil {
		utils.RespondError(w, http.StatusServiceUnavailable, "chatbot unavailable")
		return
	}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.Message == "" {
		utils.RespondError(w, http.StatusBadRequest, "message is required")
		return
	}

	reply, err := h.replier.Reply(r.Context(), payload.Message)
	if err != nil {
		log.Printf("[chatbot] reply failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "error communicating with chatbot")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"reply": reply})
}
