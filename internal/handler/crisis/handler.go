package crisis

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/crisisconnect/backend/internal/model/crisis"
	"github.com/crisisconnect/backend/pkg/utils"
)

// Handler serves crisis-report routes.
type Handler struct {
	crises crisis.Store
}

// New creates the crisis handler.
func New(crises crisis.Store) *Handler {
	return &Handler{crises: crises}
}

// RegisterPublicRoutes registers the open reporting and listing routes.
// Reporting stays unauthenticated so bystanders can raise a crisis
// without an account.
func (h *Handler) RegisterPublicRoutes(r chi.Router) {
	r.Post("/crisis", h.handleReportCrisis)
	r.Get("/crises", h.handleListCrises)
}

// RegisterProtectedRoutes registers the history route behind the gate.
func (h *Handler) RegisterProtectedRoutes(r chi.Router) {
	r.Get("/gethist", h.handleHistory)
}

type reportRequest struct {
	Desc     string    `json:"desc"`
	FullName string    `json:"fullName"`
	Time     string    `json:"time"`
	Date     string    `json:"date"`
	Cords    []float64 `json:"cords"`
}

// handleReportCrisis records a new crisis report. Cords must be a
// [longitude, latitude] pair.
func (h *Handler) handleReportCrisis(w http.ResponseWriter, r *http.Request) {
	var payload reportRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(payload.Cords) != 2 {
		utils.RespondError(w, http.StatusBadRequest, "coordinates must be an array of two numbers [longitude, latitude]")
		return
	}

	saved, err := h.crises.Save(r.Context(), crisis.Crisis{
		Desc:     payload.Desc,
		FullName: payload.FullName,
		Time:     payload.Time,
		Date:     payload.Date,
		Cords:    payload.Cords,
	})
	if err != nil {
		log.Printf("[crisis] save failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]any{
		"message": "crisis saved successfully",
		"crisis":  saved,
	})
}

// handleListCrises returns every recorded crisis report.
func (h *Handler) handleListCrises(w http.ResponseWriter, r *http.Request) {
	crises, err := h.crises.List(r.Context())
	if err != nil {
		log.Printf("[crisis] list failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "error fetching crises")
		return
	}
	utils.RespondJSON(w, http.StatusOK, crises)
}

// handleHistory returns the report matching the _id query parameter.
func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("_id")
	if id == "" {
		utils.RespondError(w, http.StatusBadRequest, "_id query parameter is required")
		return
	}

	report, err := h.crises.FindByID(r.Context(), id)
	if errors.Is(err, crisis.ErrNotFound) {
		utils.RespondError(w, http.StatusNotFound, "no documents found")
		return
	}
	if err != nil {
		log.Printf("[crisis] history lookup failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "server error")
		return
	}
	utils.RespondJSON(w, http.StatusOK, []crisis.Crisis{report})
}
