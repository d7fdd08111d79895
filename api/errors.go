package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/bcortri1/jobly/internal/apperr"
)

var errUnauthorized = errors.New("Unauthorized")

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", slog.Any("err", err))
	}
}

// writeError maps err to a status code. Unexpected errors are logged and
// reported without detail.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	msg := "Internal Server Error"

	switch {
	case errors.Is(err, apperr.ErrInvalidInput):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, apperr.ErrNotFound):
		status, msg = http.StatusNotFound, err.Error()
	case errors.Is(err, errUnauthorized):
		status, msg = http.StatusUnauthorized, err.Error()
	default:
		logger.Error("request failed", slog.Any("err", err))
	}

	writeJSON(w, errorBody{Error: errorDetail{Message: msg, Status: status}}, status)
}
