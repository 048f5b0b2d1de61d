package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/akarpov/storefront/internal/model"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps the service error taxonomy to HTTP statuses. Anything
// outside the taxonomy is an internal error and keeps its detail out of the
// response body.
func writeError(w http.ResponseWriter, err error) {
	var vErr *model.ValidationError

	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.As(err, &vErr):
		status = http.StatusBadRequest
		message = vErr.Error()
	case errors.Is(err, model.ErrInvalidToken):
		status = http.StatusUnauthorized
		message = "invalid token"
	case errors.Is(err, model.ErrInvalidCredential):
		status = http.StatusUnauthorized
		message = "invalid credential"
	case errors.Is(err, model.ErrNotFound):
		status = http.StatusNotFound
		message = "not found"
	case errors.Is(err, model.ErrDuplicateIdentity):
		status = http.StatusConflict
		message = "email already registered"
	}

	writeJSON(w, status, errorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// bearerToken extracts the raw token from the Authorization header, stripping
// the transport-level Bearer prefix.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	return strings.TrimPrefix(header, "Bearer ")
}
