package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cambix/currency-conversion-api/internal/services"
)

// ErrorResponse is the uniform error body.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`

	// Violated constraints, present for validation errors only
	Details []string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeServiceError maps a service error onto the HTTP surface.
func writeServiceError(w http.ResponseWriter, err error) {
	if verr, ok := services.AsValidationError(err); ok {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "Validation failed",
			Details: verr.Details,
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrRateNotFound),
		errors.Is(err, services.ErrConversionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrPatchNotAllowed):
		writeError(w, http.StatusMethodNotAllowed, err.Error())
	case errors.Is(err, services.ErrRateUnavailable):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, services.ErrStoreUnavailable):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
