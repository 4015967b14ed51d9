package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu               sync.Mutex
	commandsApplied  map[string]int
	commandsRejected map[string]int
	persistFailures  int
	notifSent        map[string]int
	notifFailed      map[string]int
	historyDepth     map[string][2]int
	startupTime      float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		commandsApplied:  make(map[string]int),
		commandsRejected: make(map[string]int),
		notifSent:        make(map[string]int),
		notifFailed:      make(map[string]int),
		historyDepth:     make(map[string][2]int),
	}
}

func (m *Mock) IncCommandApplied(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commandsApplied[kind]++
}

func (m *Mock) IncCommandRejected(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commandsRejected[kind]++
}

func (m *Mock) IncPersistFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.persistFailures++
}

func (m *Mock) IncNotifSent(channel string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifSent[channel]++
}

func (m *Mock) IncNotifFailed(channel string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifFailed[channel]++
}

func (m *Mock) SetHistoryDepth(board string, undo, redo int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.historyDepth[board] = [2]int{undo, redo}
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// CommandsApplied returns how often IncCommandApplied was called for kind.
func (m *Mock) CommandsApplied(kind string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.commandsApplied[kind]
}

// CommandsRejected returns how often IncCommandRejected was called for kind.
func (m *Mock) CommandsRejected(kind string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.commandsRejected[kind]
}

// PersistFailures returns the number of times IncPersistFailures was called.
func (m *Mock) PersistFailures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.persistFailures
}

// NotifSent returns the number of successful notifications for channel.
func (m *Mock) NotifSent(channel string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notifSent[channel]
}

// NotifFailed returns the number of failed notifications for channel.
func (m *Mock) NotifFailed(channel string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notifFailed[channel]
}

// HistoryDepth returns the last recorded undo and redo depth for board.
func (m *Mock) HistoryDepth(board string) (undo, redo int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d := m.historyDepth[board]
	return d[0], d[1]
}
