package history

import (
	"errors"
	"fmt"

	"github.com/mauv0809/scoreboard/internal/roster"
)

var (
	// ErrHistoryEmpty is wrapped by both ErrNothingToUndo and ErrNothingToRedo.
	ErrHistoryEmpty  = errors.New("history is empty")
	ErrNothingToUndo = fmt.Errorf("%w: nothing to undo", ErrHistoryEmpty)
	ErrNothingToRedo = fmt.Errorf("%w: nothing to redo", ErrHistoryEmpty)
)

// Manager keeps linear undo/redo stacks of roster snapshots.
type Manager struct {
	undo  []roster.Snapshot
	redo  []roster.Snapshot
	limit int
}

// New creates a Manager. A limit of zero or less keeps every entry;
// otherwise the oldest undo entries are dropped past the limit.
func New(limit int) *Manager {
	if limit < 0 {
		limit = 0
	}
	return &Manager{limit: limit}
}

// Commit records the state captured before a mutation and discards any redo future.
func (m *Manager) Commit(before roster.Snapshot) {
	m.pushUndo(before)
	m.redo = nil
}

// Undo returns the state to restore, remembering current for redo.
func (m *Manager) Undo(current roster.Snapshot) (roster.Snapshot, error) {
	if len(m.undo) == 0 {
		return roster.Snapshot{}, ErrNothingToUndo
	}
	prev := m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]
	m.redo = append(m.redo, current)
	return prev, nil
}

// Redo returns the state to restore, remembering current for undo.
func (m *Manager) Redo(current roster.Snapshot) (roster.Snapshot, error) {
	if len(m.redo) == 0 {
		return roster.Snapshot{}, ErrNothingToRedo
	}
	next := m.redo[len(m.redo)-1]
	m.redo = m.redo[:len(m.redo)-1]
	m.pushUndo(current)
	return next, nil
}

func (m *Manager) CanUndo() bool { return len(m.undo) > 0 }

func (m *Manager) CanRedo() bool { return len(m.redo) > 0 }

// Depth returns the sizes of the undo and redo stacks.
func (m *Manager) Depth() (undo, redo int) {
	return len(m.undo), len(m.redo)
}

// Clear drops both stacks.
func (m *Manager) Clear() {
	m.undo = nil
	m.redo = nil
}

func (m *Manager) pushUndo(s roster.Snapshot) {
	m.undo = append(m.undo, s)
	if m.limit > 0 && len(m.undo) > m.limit {
		excess := len(m.undo) - m.limit
		m.undo = append([]roster.Snapshot(nil), m.undo[excess:]...)
	}
}
