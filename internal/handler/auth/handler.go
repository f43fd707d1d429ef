package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/crisisconnect/backend/internal/auth"
	"github.com/crisisconnect/backend/internal/model/user"
	"github.com/crisisconnect/backend/pkg/utils"
)

// Handler serves registration and login.
type Handler struct {
	users   user.Store
	tokens  *auth.TokenManager
	pinCost int
}

// New creates the auth handler.
func New(users user.Store, tokens *auth.TokenManager, pinCost int) *Handler {
	return &Handler{users: users, tokens: tokens, pinCost: pinCost}
}

// RegisterRoutes registers the public auth routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/signup", h.handleSignup)
	r.Post("/login", h.handleLogin)
}

type signupRequest struct {
	FullName     string   `json:"fullName"`
	DOB          user.DOB `json:"dob"`
	Gender       string   `json:"gender"`
	MobileNumber string   `json:"mobileNumber"`
	Email        string   `json:"email"`
	PIN          string   `json:"pin"`
}

// handleSignup registers a new account and issues its first session
// token.
func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	var payload signupRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.Email == "" || payload.PIN == "" {
		utils.RespondError(w, http.StatusBadRequest, "email and pin are required")
		return
	}

	pinHash, err := auth.HashPIN(payload.PIN, h.pinCost)
	if err != nil {
		log.Printf("[auth] pin hashing failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	created, err := h.users.Save(r.Context(), user.User{
		FullName:     payload.FullName,
		DOB:          payload.DOB,
		Gender:       payload.Gender,
		MobileNumber: payload.MobileNumber,
		Email:        payload.Email,
		PINHash:      pinHash,
	})
	if errors.Is(err, user.ErrDuplicateEmail) {
		utils.RespondError(w, http.StatusBadRequest, "email already in use")
		return
	}
	if err != nil {
		log.Printf("[auth] signup failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	token, err := h.tokens.Issue(created.ID)
	if err != nil {
		log.Printf("[auth] token issue failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]string{
		"message": "user created successfully",
		"token":   token,
	})
}

type loginRequest struct {
	Email        string `json:"email"`
	MobileNumber string `json:"mobileNumber"`
	PIN          string `json:"pin"`
}

// handleLogin checks a PIN against the stored hash for the account
// identified by email or mobile number and issues a session token.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var (
		account user.User
		err     error
	)
	switch {
	case payload.Email != "":
		account, err = h.users.FindByEmail(r.Context(), payload.Email)
	case payload.MobileNumber != "":
		account, err = h.users.FindByMobile(r.Context(), payload.MobileNumber)
	default:
		utils.RespondError(w, http.StatusBadRequest, "invalid login method")
		return
	}

	if errors.Is(err, user.ErrNotFound) {
		utils.RespondError(w, http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		log.Printf("[auth] login lookup failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if !auth.VerifyPIN(payload.PIN, account.PINHash) {
		utils.RespondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := h.tokens.Issue(account.ID)
	if err != nil {
		log.Printf("[auth] token issue failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"message": "login successful",
		"token":   token,
	})
}
