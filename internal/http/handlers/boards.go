package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/scoreboard/internal/persistence"
	"github.com/mauv0809/scoreboard/internal/session"
)

// ListBoardsHandler lists every known board name.
func ListBoardsHandler(reg *session.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names, err := reg.Names(r.Context())
		if err != nil {
			writeError(w, err, nil)
			return
		}
		writeJSON(w, http.StatusOK, map[string][]string{"boards": names})
	}
}

// GetBoardHandler returns the roster and leaderboard of a board.
func GetBoardHandler(reg *session.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := reg.Get(r.Context(), r.PathValue("board"))
		if err != nil {
			writeError(w, err, nil)
			return
		}
		writeJSON(w, http.StatusOK, s.Board())
	}
}

type nameRequest struct {
	Name string `json:"name"`
}

type deltaRequest struct {
	Delta int `json:"delta"`
}

func AddPlayerHandler(reg *session.Registry) http.HandlerFunc {
	return commandHandler(reg, func(r *http.Request) (session.Command, error) {
		var req nameRequest
		if err := decodeBody(r, &req); err != nil {
			return session.Command{}, err
		}
		return session.AddPlayer(req.Name), nil
	})
}

func RenamePlayerHandler(reg *session.Registry) http.HandlerFunc {
	return commandHandler(reg, func(r *http.Request) (session.Command, error) {
		index, err := pathIndex(r)
		if err != nil {
			return session.Command{}, err
		}
		var req nameRequest
		if err := decodeBody(r, &req); err != nil {
			return session.Command{}, err
		}
		return session.Rename(index, req.Name), nil
	})
}

func AdjustScoreHandler(reg *session.Registry) http.HandlerFunc {
	return commandHandler(reg, func(r *http.Request) (session.Command, error) {
		index, err := pathIndex(r)
		if err != nil {
			return session.Command{}, err
		}
		var req deltaRequest
		if err := decodeBody(r, &req); err != nil {
			return session.Command{}, err
		}
		return session.AdjustScore(index, req.Delta), nil
	})
}

func ResetHandler(reg *session.Registry) http.HandlerFunc {
	return commandHandler(reg, fixed(session.ResetAll()))
}

func UndoHandler(reg *session.Registry) http.HandlerFunc {
	return commandHandler(reg, fixed(session.Undo()))
}

func RedoHandler(reg *session.Registry) http.HandlerFunc {
	return commandHandler(reg, fixed(session.Redo()))
}

// CommandHandler accepts any command as a JSON envelope.
func CommandHandler(reg *session.Registry) http.HandlerFunc {
	return commandHandler(reg, func(r *http.Request) (session.Command, error) {
		var cmd session.Command
		if err := decodeBody(r, &cmd); err != nil {
			return session.Command{}, err
		}
		return cmd, nil
	})
}

func fixed(cmd session.Command) func(*http.Request) (session.Command, error) {
	return func(*http.Request) (session.Command, error) { return cmd, nil }
}

// commandHandler resolves the board, parses the command and applies it.
// A change that could not be saved is still reported as 200 with a warning.
func commandHandler(reg *session.Registry, parse func(*http.Request) (session.Command, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := reg.Get(r.Context(), r.PathValue("board"))
		if err != nil {
			writeError(w, err, nil)
			return
		}
		cmd, err := parse(r)
		if err != nil {
			writeError(w, err, nil)
			return
		}

		res, err := s.Apply(r.Context(), cmd)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, res)
		case errors.Is(err, persistence.ErrPersist):
			log.Warn("Board changed but not saved", "board", s.Name(), "error", err)
			writeJSON(w, http.StatusOK, res)
		default:
			writeError(w, err, &res.Board)
		}
	}
}

func decodeBody(r *http.Request, v any) error {
	if r.Body == nil {
		return fmt.Errorf("%w: missing body", errBadRequest)
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", errBadRequest, err)
	}
	return nil
}

func pathIndex(r *http.Request) (int, error) {
	raw := r.PathValue("index")
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid player index %q", errBadRequest, raw)
	}
	return index, nil
}
