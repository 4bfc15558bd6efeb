// Package respond maps service results and error kinds onto HTTP
// responses so every handler reports failures the same way.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/trungle-dev/renty/internal/apperr"
)

type errorBody struct {
	Error string `json:"error"`
}

// JSON writes v as a JSON body with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Error translates an error kind into a status code and writes it.
func Error(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, apperr.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperr.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperr.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, apperr.ErrInvalidOperation):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, apperr.ErrTransient):
		status = http.StatusServiceUnavailable
	}

	if status == http.StatusInternalServerError {
		slog.Error("request failed", "error", err)
		JSON(w, status, errorBody{Error: "internal error"})

		return
	}

	JSON(w, status, errorBody{Error: err.Error()})
}
