package news

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/crisisconnect/backend/internal/service/news"
	"github.com/crisisconnect/backend/pkg/utils"
)

// Feed fetches the raw news payload.
type Feed interface {
	Fetch(ctx context.Context) (json.RawMessage, error)
}

// Handler proxies the disaster-news feed.
type Handler struct {
	feed Feed
}

// New creates the news handler.
func New(feed Feed) *Handler {
	return &Handler{feed: feed}
}

// RegisterRoutes registers the news route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/news", h.handleNews)
}

// handleNews relays the feed, propagating the upstream status on
// failure. Upstream calls are never retried.
func (h *Handler) handleNews(w http.ResponseWriter, r *http.Request) {
	payload, err := h.feed.Fetch(r.Context())
	if err != nil {
		var upstream *news.UpstreamError
		if errors.As(err, &upstream) {
			utils.RespondJSON(w, upstream.Status, map[string]string{"error": upstream.Message})
			return
		}
		log.Printf("[news] fetch failed: %v", err)
		utils.RespondJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to fetch news"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(payload); err != nil {
		log.Printf("[news] write response failed: %v", err)
	}
}
