package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/akarpov/storefront/internal/logger"
	"github.com/akarpov/storefront/internal/model"
)

// AuthService defines registration, login and token refresh operations.
type AuthService interface {
	Register(ctx context.Context, email, secret, displayName string) (model.Token, error)
	Login(ctx context.Context, email, secret string) (model.Token, error)
	RefreshToken(ctx context.Context, token string) (model.Token, error)
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	service AuthService
	logger  *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(service AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		service: service,
		logger:  logger,
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new identity and returns its first token.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, model.NewValidationError("body", "must be valid JSON"))
		return
	}

	h.logger.Debug("auth handler: processing register request", "email", req.Email)

	token, err := h.service.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		h.logger.Error("auth handler: register failed", "email", req.Email, "error", err.Error())
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, token)
}

// Login verifies credentials and returns a fresh token.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, model.NewValidationError("body", "must be valid JSON"))
		return
	}

	h.logger.Debug("auth handler: processing login request", "email", req.Email)

	token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Error("auth handler: login failed", "email", req.Email, "error", err.Error())
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, token)
}

// Refresh exchanges the bearer token for a fresh one.
func (h *Auth) Refresh(w http.ResponseWriter, r *http.Request) {
	token, err := h.service.RefreshToken(r.Context(), bearerToken(r))
	if err != nil {
		h.logger.Error("auth handler: refresh failed", "error", err.Error())
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, token)
}
