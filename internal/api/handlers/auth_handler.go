package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/avelara/storefront-be/internal/auth"
	"github.com/avelara/storefront-be/internal/services"
)

// AuthHandler handles registration, login and user listing.
type AuthHandler struct {
	service services.UserServiceProvider
	tokens  *auth.TokenManager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.UserServiceProvider, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{service: service, tokens: tokens}
}

// RegisterPayload defines the structure for registration requests.
type RegisterPayload struct {
	Username string `json:"userName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginPayload defines the structure for login requests.
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles new user registration. No token is issued here; the
// client logs in separately.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload RegisterPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if payload.Username == "" || payload.Email == "" || payload.Password == "" {
		writeError(w, http.StatusBadRequest, "Please enter all fields")
		return
	}

	_, err := h.service.Register(payload.Username, payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrUserExists) {
			writeError(w, http.StatusBadRequest, "User already exists")
			return
		}
		log.Error().Err(err).Str("email", payload.Email).Msg("Failed to register user")
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "User registered successfully!"})
}

// Login authenticates a user and returns a signed bearer token alongside a
// public-safe user summary.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.service.Authenticate(payload.Email, payload.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			writeError(w, http.StatusBadRequest, "User not found")
		case errors.Is(err, services.ErrInvalidCredentials):
			log.Warn().Str("email", payload.Email).Msg("Failed authentication attempt")
			writeError(w, http.StatusBadRequest, "Invalid credentials")
		default:
			log.Error().Err(err).Str("email", payload.Email).Msg("Login failed")
			writeError(w, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	token, err := h.tokens.Generate(user)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to generate token")
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Logged in successfully",
		"token":   token,
		"user":    user,
	})
}

// GetUsers handles retrieving all registered users.
func (h *AuthHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetAllUsers()
	if err != nil {
		log.Error().Err(err).Msg("Failed to retrieve users")
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusOK, users)
}
