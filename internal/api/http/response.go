package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"rentquote-backend/internal/logger"
	"rentquote-backend/internal/pricing"
	"rentquote-backend/internal/repository"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorResponse{Error: msg})
}

// respondServiceError maps known service errors onto HTTP statuses. A missing
// pricing tier is a client problem (422 with the equipment name and duration),
// not a server fault.
func respondServiceError(w http.ResponseWriter, err error) {
	var nte *pricing.NoTierError
	switch {
	case errors.As(err, &nte):
		respondError(w, http.StatusUnprocessableEntity, nte.Error())
	case errors.Is(err, repository.ErrNotFound):
		respondError(w, http.StatusNotFound, "not found")
	default:
		logger.Error("Request failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
