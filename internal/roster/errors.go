package roster

import "errors"

var (
	ErrInvalidName    = errors.New("player name must not be empty")
	ErrDuplicateName  = errors.New("player name must be unique")
	ErrEmptyRoster    = errors.New("no players to reset")
	ErrPlayerNotFound = errors.New("player not found")
)
