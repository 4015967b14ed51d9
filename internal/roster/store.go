package roster

import (
	"fmt"
	"math"
	"strings"
)

// Store holds the canonical, ordered list of players for one board.
// It is not safe for concurrent use; callers serialise access.
type Store struct {
	players []Player
}

// New creates a Store seeded with a copy of players.
func New(players ...Player) *Store {
	return &Store{players: clonePlayers(players)}
}

// Len returns the number of players on the roster.
func (s *Store) Len() int {
	return len(s.players)
}

// Players returns a copy of the roster in insertion order.
func (s *Store) Players() []Player {
	return clonePlayers(s.players)
}

// CheckAdd validates a new player name and returns it trimmed.
func (s *Store) CheckAdd(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrInvalidName
	}
	if i := s.indexOf(name); i >= 0 {
		return "", fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	return name, nil
}

// AddPlayer appends a player with a zero score.
func (s *Store) AddPlayer(name string) error {
	name, err := s.CheckAdd(name)
	if err != nil {
		return err
	}
	s.players = append(s.players, Player{Name: name})
	return nil
}

// CheckRename validates renaming the player at index and returns the trimmed name.
// Keeping a player's own name is allowed.
func (s *Store) CheckRename(index int, newName string) (string, error) {
	if err := s.checkIndex(index); err != nil {
		return "", err
	}
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return "", ErrInvalidName
	}
	if i := s.indexOf(newName); i >= 0 && i != index {
		return "", fmt.Errorf("%w: %q", ErrDuplicateName, newName)
	}
	return newName, nil
}

// RenamePlayer renames the player at index in place, keeping its position and score.
func (s *Store) RenamePlayer(index int, newName string) error {
	newName, err := s.CheckRename(index, newName)
	if err != nil {
		return err
	}
	s.players[index].Name = newName
	return nil
}

// CheckAdjust validates a score adjustment for the player at index.
func (s *Store) CheckAdjust(index int) error {
	return s.checkIndex(index)
}

// AdjustScore adds delta to the player's score, clamping at zero.
func (s *Store) AdjustScore(index int, delta int) error {
	if err := s.CheckAdjust(index); err != nil {
		return err
	}
	s.players[index].Score = clampScore(s.players[index].Score, delta)
	return nil
}

// CheckReset reports ErrEmptyRoster when there is nothing to reset.
func (s *Store) CheckReset() error {
	if len(s.players) == 0 {
		return ErrEmptyRoster
	}
	return nil
}

// ResetAllScores sets every player's score to zero.
func (s *Store) ResetAllScores() error {
	if err := s.CheckReset(); err != nil {
		return err
	}
	for i := range s.players {
		s.players[i].Score = 0
	}
	return nil
}

// Snapshot returns an independent copy of the current roster.
func (s *Store) Snapshot() Snapshot {
	return NewSnapshot(s.players)
}

// Restore replaces the whole roster with the snapshot's contents.
func (s *Store) Restore(snapshot Snapshot) {
	s.players = snapshot.Players()
}

func (s *Store) indexOf(name string) int {
	for i, p := range s.players {
		if p.Name == name {
			return i
		}
	}
	return -1
}

func (s *Store) checkIndex(index int) error {
	if index < 0 || index >= len(s.players) {
		return fmt.Errorf("%w: index %d", ErrPlayerNotFound, index)
	}
	return nil
}

// clampScore applies delta with a floor of zero and saturates instead of overflowing.
func clampScore(score, delta int) int {
	if delta > 0 && score > math.MaxInt-delta {
		return math.MaxInt
	}
	next := score + delta
	if next < 0 {
		return 0
	}
	return next
}
