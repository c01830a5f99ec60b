package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"vehicle-rental-api/internal/domain"
	"vehicle-rental-api/internal/logger"
	"vehicle-rental-api/internal/service"
)

var validate = validator.New()

type errorResponse struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// respondError maps the domain error taxonomy onto HTTP statuses:
// NotFound→404, Conflict→409, bad credentials→401, anything else→500.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsNotFound(err):
		respondJSON(w, http.StatusNotFound, errorResponse{Message: err.Error()})
	case domain.IsConflict(err):
		respondJSON(w, http.StatusConflict, errorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		respondJSON(w, http.StatusUnauthorized, errorResponse{Message: err.Error()})
	default:
		logger.Error("Request failed", "error", err)
		respondJSON(w, http.StatusInternalServerError, errorResponse{Message: "internal server error"})
	}
}

func respondBadRequest(w http.ResponseWriter, msg string) {
	respondJSON(w, http.StatusBadRequest, errorResponse{Message: msg})
}

// decodeAndValidate decodes a JSON body into req and runs struct validation.
// Returns false after writing a 400 response when either step fails.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		respondBadRequest(w, "invalid request body")
		return false
	}
	if err := validate.Struct(req); err != nil {
		respondBadRequest(w, err.Error())
		return false
	}
	return true
}
