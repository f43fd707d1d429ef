package notify

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/crisisconnect/backend/pkg/utils"
)

// Handler builds client-side share links for emergency messages.
type Handler struct{}

// New creates the notify handler.
func New() *Handler {
	return &Handler{}
}

// RegisterRoutes registers the share-link route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/sms", h.handleShareLink)
}

// handleShareLink returns a WhatsApp deep link carrying the message, so
// the client can hand off to the messaging app.
func (h *Handler) handleShareLink(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		No  string `json:"no"`
		Msg string `json:"msg"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.No == "" {
		utils.RespondError(w, http.StatusBadRequest, "no is required")
		return
	}

	link := fmt.Sprintf("https://wa.me/91%s?text=%s", payload.No, url.QueryEscape(payload.Msg))
	utils.RespondJSON(w, http.StatusOK, map[string]string{"whatsappLink": link})
}
