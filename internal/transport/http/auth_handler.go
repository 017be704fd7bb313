package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/light-bringer/storefront-service/internal/app/auth"
)

// AuthHandler serves the mocked login.
type AuthHandler struct {
	auth *auth.Service
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(auth *auth.Service) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token     string    `json:"token"`
	MemberID  string    `json:"memberId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// RegisterRoutes mounts the auth routes.
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", h.login)
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respond(w, http.StatusOK, LoginResponse{
		Token:     token.Value,
		MemberID:  token.MemberID,
		ExpiresAt: token.ExpiresAt,
	})
}
