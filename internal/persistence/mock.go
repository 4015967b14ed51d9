package persistence

import (
	"context"
	"sort"
	"sync"
)

// Mock is an in-memory BlobStore for tests. It is safe for concurrent use.
type Mock struct {
	mu    sync.Mutex
	blobs map[string][]byte

	// Spies for method calls
	LoadFunc func(key string) ([]byte, bool, error)
	SaveFunc func(key string, blob []byte) error

	// Call records
	SaveCalls []SaveCall
}

// SaveCall holds the arguments for a call to Save.
type SaveCall struct {
	Key  string
	Blob []byte
}

var _ BlobStore = (*Mock)(nil)

// NewMock creates an empty in-memory store.
func NewMock() *Mock {
	return &Mock{blobs: make(map[string][]byte)}
}

func (m *Mock) Load(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadFunc != nil {
		return m.LoadFunc(key)
	}
	blob, ok := m.blobs[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), blob...), true, nil
}

func (m *Mock) Save(ctx context.Context, key string, blob []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveCalls = append(m.SaveCalls, SaveCall{Key: key, Blob: blob})
	if m.SaveFunc != nil {
		if err := m.SaveFunc(key, blob); err != nil {
			return err
		}
	}
	m.blobs[key] = append([]byte(nil), blob...)
	return nil
}

func (m *Mock) Keys(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.blobs))
	for k := range m.blobs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Put stores a blob directly, bypassing call records.
func (m *Mock) Put(key string, blob []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[key] = append([]byte(nil), blob...)
}

// SaveCount returns the number of times Save was called.
func (m *Mock) SaveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.SaveCalls)
}
