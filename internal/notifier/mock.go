package notifier

import (
	"context"
	"sync"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spy for method calls
	BoardChangedFunc func(change Change) error

	// Call records
	BoardChangedCalls []Change
	DryRuns           []bool
}

var _ Notifier = (*Mock)(nil)

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.BoardChangedCalls = nil
	m.DryRuns = nil
}

func (m *Mock) BoardChanged(ctx context.Context, change Change) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.BoardChangedCalls = append(m.BoardChangedCalls, change)
	m.DryRuns = append(m.DryRuns, IsDryRun(ctx))
	if m.BoardChangedFunc != nil {
		return m.BoardChangedFunc(change)
	}
	return nil
}

// Calls returns a copy of the recorded changes.
func (m *Mock) Calls() []Change {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Change(nil), m.BoardChangedCalls...)
}
