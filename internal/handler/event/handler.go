package event

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/crisisconnect/backend/internal/middleware"
	"github.com/crisisconnect/backend/internal/model/event"
	"github.com/crisisconnect/backend/internal/model/user"
	"github.com/crisisconnect/backend/pkg/utils"
)

// Handler serves volunteer-event routes.
type Handler struct {
	events event.Store
	users  user.Store
}

// New creates the event handler.
func New(events event.Store, users user.Store) *Handler {
	return &Handler{events: events, users: users}
}

// RegisterPublicRoutes registers the routes that do not require a
// session token.
func (h *Handler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/events", h.handleListEvents)
	r.Post("/{eventID}/volunteer", h.handleVolunteer)
	r.Post("/userevents", h.handleUserEvents)
}

// RegisterProtectedRoutes registers the routes behind the auth gate.
func (h *Handler) RegisterProtectedRoutes(r chi.Router) {
	r.Post("/create", h.handleCreateEvent)
	r.Get("/hosted-events", h.handleHostedEvents)
	r.Delete("/events/{eventID}", h.handleDeleteEvent)
}

// handleListEvents returns every event.
func (h *Handler) handleListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.List(r.Context())
	if err != nil {
		log.Printf("[event] list failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "error fetching events")
		return
	}
	utils.RespondJSON(w, http.StatusOK, events)
}

type createEventRequest struct {
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Date           time.Time `json:"date"`
	Location       string    `json:"location"`
	SkillsRequired string    `json:"skillsRequired"`
}

// handleCreateEvent creates an event hosted by the authenticated user
// and records it on the host's account.
func (h *Handler) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	var payload createEventRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.Title == "" || payload.Description == "" || payload.Location == "" || payload.Date.IsZero() {
		utils.RespondError(w, http.StatusBadRequest, "title, description, date and location are required")
		return
	}

	userID, _ := middleware.UserID(r.Context())
	created, err := h.events.Save(r.Context(), event.Event{
		Title:          payload.Title,
		Description:    payload.Description,
		Date:           payload.Date,
		Location:       payload.Location,
		SkillsRequired: payload.SkillsRequired,
		Volunteers:     []string{},
		Host:           userID,
	})
	if err != nil {
		log.Printf("[event] create failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "error creating event")
		return
	}

	if host, err := h.users.FindByID(r.Context(), userID); err == nil {
		host.HostedEvents = append(host.HostedEvents, created.ID)
		if err := h.users.Update(r.Context(), host); err != nil {
			log.Printf("[event] recording hosted event failed: %v", err)
		}
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]any{
		"message": "event created successfully",
		"event":   created,
	})
}

// handleVolunteer adds the calling user to an event's volunteer list.
// Adding the same volunteer twice is a no-op.
func (h *Handler) handleVolunteer(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")

	var payload struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.UserID == "" {
		utils.RespondError(w, http.StatusBadRequest, "userId is required")
		return
	}

	evt, err := h.events.FindByID(r.Context(), eventID)
	if errors.Is(err, event.ErrNotFound) {
		utils.RespondError(w, http.StatusNotFound, "event not found")
		return
	}
	if err != nil {
		log.Printf("[event] volunteer lookup failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "error volunteering for event")
		return
	}

	already := false
	for _, v := range evt.Volunteers {
		if v == payload.UserID {
			already = true
			break
		}
	}
	if !already {
		evt.Volunteers = append(evt.Volunteers, payload.UserID)
		if err := h.events.Update(r.Context(), evt); err != nil {
			log.Printf("[event] volunteer update failed: %v", err)
			utils.RespondError(w, http.StatusInternalServerError, "error volunteering for event")
			return
		}
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"message": "user added as volunteer",
		"event":   evt,
	})
}

// handleHostedEvents returns the events hosted by the authenticated
// user.
func (h *Handler) handleHostedEvents(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())
	host, err := h.users.FindByID(r.Context(), userID)
	if errors.Is(err, user.ErrNotFound) {
		utils.RespondError(w, http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		log.Printf("[event] host lookup failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "error fetching hosted events")
		return
	}

	events, err := h.events.ListByIDs(r.Context(), host.HostedEvents)
	if err != nil {
		log.Printf("[event] hosted list failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "error fetching hosted events")
		return
	}
	utils.RespondJSON(w, http.StatusOK, events)
}

// handleUserEvents returns the events a user volunteered for, 404 when
// there are none.
func (h *Handler) handleUserEvents(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.UserID == "" {
		utils.RespondError(w, http.StatusBadRequest, "userId is required")
		return
	}

	events, err := h.events.ListByVolunteer(r.Context(), payload.UserID)
	if err != nil {
		log.Printf("[event] user events failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if len(events) == 0 {
		utils.RespondError(w, http.StatusNotFound, "no events found for this user")
		return
	}
	utils.RespondJSON(w, http.StatusOK, events)
}

// handleDeleteEvent removes an event.
func (h *Handler) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")
	err := h.events.Delete(r.Context(), eventID)
	if errors.Is(err, event.ErrNotFound) {
		utils.RespondError(w, http.StatusNotFound, "event not found")
		return
	}
	if err != nil {
		log.Printf("[event] delete failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "error deleting event")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "event deleted successfully"})
}
