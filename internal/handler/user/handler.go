package user

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/crisisconnect/backend/internal/auth"
	"github.com/crisisconnect/backend/internal/middleware"
	"github.com/crisisconnect/backend/internal/model/user"
	"github.com/crisisconnect/backend/pkg/utils"
)

// Handler serves account, emergency-contact and personal-info routes.
// Every route here runs behind the auth gate.
type Handler struct {
	users   user.Store
	pinCost int
}

// New creates the user handler.
func New(users user.Store, pinCost int) *Handler {
	return &Handler{users: users, pinCost: pinCost}
}

// RegisterRoutes registers the protected user routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/api/user/account", h.handleAccount)
	r.Put("/api/user/update-password", h.handleUpdatePIN)
	r.Post("/nominee", h.handleAddNominee)
	r.Post("/personal-info", h.handleUpsertPersonalInfo)
	r.Get("/personal-info", h.handleGetPersonalInfo)
	r.Post("/personal-info/update", h.handleUpsertPersonalInfo)
	r.Delete("/personal-info/delete", h.handleDeletePersonalInfo)
}

// currentUser loads the record for the authenticated request. A false
// return means a response has already been written.
func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) (user.User, bool) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "no token provided")
		return user.User{}, false
	}
	account, err := h.users.FindByID(r.Context(), userID)
	if errors.Is(err, user.ErrNotFound) {
		utils.RespondError(w, http.StatusNotFound, "user not found")
		return user.User{}, false
	}
	if err != nil {
		log.Printf("[user] lookup failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "internal server error")
		return user.User{}, false
	}
	return account, true
}

// handleAccount returns the authenticated user's record. The PIN hash
// never serializes.
func (h *Handler) handleAccount(w http.ResponseWriter, r *http.Request) {
	account, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	utils.RespondJSON(w, http.StatusOK, account)
}

type updatePINRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// handleUpdatePIN rotates the login PIN: the current PIN must verify,
// and the new one is hashed with a fresh salt.
func (h *Handler) handleUpdatePIN(w http.ResponseWriter, r *http.Request) {
	var payload updatePINRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.NewPassword == "" {
		utils.RespondError(w, http.StatusBadRequest, "newPassword is required")
		return
	}

	account, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	if !auth.VerifyPIN(payload.CurrentPassword, account.PINHash) {
		utils.RespondError(w, http.StatusBadRequest, "incorrect current password")
		return
	}

	newHash, err := auth.HashPIN(payload.NewPassword, h.pinCost)
	if err != nil {
		log.Printf("[user] pin hashing failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	account.PINHash = newHash
	if err := h.users.Update(r.Context(), account); err != nil {
		log.Printf("[user] pin update failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "password updated successfully"})
}

type nomineeRequest struct {
	FullName      string `json:"fullName"`
	Relation      string `json:"relation"`
	ContactNumber string `json:"contactNumber"`
}

// handleAddNominee appends an emergency contact to the user's record.
func (h *Handler) handleAddNominee(w http.ResponseWriter, r *http.Request) {
	var payload nomineeRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.FullName == "" || payload.ContactNumber == "" {
		utils.RespondError(w, http.StatusBadRequest, "fullName and contactNumber are required")
		return
	}

	account, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	account.EmergencyContacts = append(account.EmergencyContacts, user.EmergencyContact{
		FullName:      payload.FullName,
		Relation:      payload.Relation,
		ContactNumber: payload.ContactNumber,
	})
	if err := h.users.Update(r.Context(), account); err != nil {
		log.Printf("[user] nominee update failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]any{
		"message":           "emergency contact added successfully",
		"emergencyContacts": account.EmergencyContacts,
	})
}

// handleUpsertPersonalInfo replaces the personal-info subdocument.
func (h *Handler) handleUpsertPersonalInfo(w http.ResponseWriter, r *http.Request) {
	var payload user.PersonalInfo
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.FirstName == "" || payload.LastName == "" {
		utils.RespondError(w, http.StatusBadRequest, "firstName and lastName are required")
		return
	}

	account, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	if payload.CreatedAt.IsZero() {
		payload.CreatedAt = time.Now().UTC()
	}
	account.PersonalInfo = &payload
	if err := h.users.Update(r.Context(), account); err != nil {
		log.Printf("[user] personal info update failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"message":      "personal information updated successfully",
		"personalInfo": account.PersonalInfo,
	})
}

// handleGetPersonalInfo returns the stored personal-info subdocument,
// or null when none has been saved.
func (h *Handler) handleGetPersonalInfo(w http.ResponseWriter, r *http.Request) {
	account, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]any{"personalInfo": account.PersonalInfo})
}

// handleDeletePersonalInfo removes the personal-info subdocument.
func (h *Handler) handleDeletePersonalInfo(w http.ResponseWriter, r *http.Request) {
	account, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	account.PersonalInfo = nil
	if err := h.users.Update(r.Context(), account); err != nil {
		log.Printf("[user] personal info delete failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "personal info deleted successfully"})
}
