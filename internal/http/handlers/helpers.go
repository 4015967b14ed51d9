package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/scoreboard/internal/history"
	"github.com/mauv0809/scoreboard/internal/persistence"
	"github.com/mauv0809/scoreboard/internal/roster"
	"github.com/mauv0809/scoreboard/internal/session"
	"github.com/mauv0809/scoreboard/internal/view"
)

// ErrorResponse is the body returned for rejected requests.
type ErrorResponse struct {
	Error string      `json:"error"`
	Board *view.Board `json:"board,omitempty"`
}

var errBadRequest = errors.New("bad request")

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, roster.ErrInvalidName),
		errors.Is(err, session.ErrInvalidBoard),
		errors.Is(err, session.ErrUnknownCommand),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, roster.ErrPlayerNotFound):
		return http.StatusNotFound
	case errors.Is(err, roster.ErrDuplicateName),
		errors.Is(err, roster.ErrEmptyRoster),
		errors.Is(err, history.ErrHistoryEmpty):
		return http.StatusConflict
	case errors.Is(err, persistence.ErrPersist):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error, board *view.Board) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		log.Error("Request failed", "error", err)
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error(), Board: board})
}
