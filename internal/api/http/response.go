package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"moto-rentals-backend/internal/domain"
	"moto-rentals-backend/internal/filter"
	"moto-rentals-backend/internal/logger"
	"moto-rentals-backend/internal/security"
	"moto-rentals-backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// writeError maps domain errors onto HTTP status codes. Internal errors are
// logged and not echoed to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "Request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		msg = "internal server error"
	}
	writeJSON(w, status, errorResponse{Error: msg})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, filter.ErrUnknownField),
		errors.Is(err, filter.ErrInvalidValue),
		errors.Is(err, service.ErrInvalidSection),
		errors.Is(err, service.ErrInvalidURL),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, security.ErrInvalidToken), errors.Is(err, security.ErrExpiredToken):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

var errBadRequest = errors.New("bad request")

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", errBadRequest, err)
	}
	return nil
}
