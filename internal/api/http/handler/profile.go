package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/akarpov/storefront/internal/logger"
	"github.com/akarpov/storefront/internal/model"
)

// ProfileService defines token-protected profile operations.
type ProfileService interface {
	GetProfile(ctx context.Context, token string) (model.Profile, error)
	UpdateProfile(ctx context.Context, token, displayName string) (model.Profile, error)
}

// Profile handles HTTP endpoints for the user profile.
type Profile struct {
	service ProfileService
	logger  *logger.Logger
}

// NewProfile creates a new Profile handler.
func NewProfile(service ProfileService, logger *logger.Logger) *Profile {
	return &Profile{
		service: service,
		logger:  logger,
	}
}

type updateProfileRequest struct {
	Name string `json:"name"`
}

// Get returns the profile projection for the bearer token's subject.
func (h *Profile) Get(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.GetProfile(r.Context(), bearerToken(r))
	if err != nil {
		h.logger.Error("profile handler: get failed", "error", err.Error())
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// Update changes the subject's display name.
func (h *Profile) Update(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, model.NewValidationError("body", "must be valid JSON"))
		return
	}

	profile, err := h.service.UpdateProfile(r.Context(), bearerToken(r), req.Name)
	if err != nil {
		h.logger.Error("profile handler: update failed", "error", err.Error())
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}
