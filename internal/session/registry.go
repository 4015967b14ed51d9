package session

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"sync"

	"github.com/mauv0809/scoreboard/internal/persistence"
)

var ErrInvalidBoard = errors.New("board name must be 1-64 letters, digits, '-' or '_'")

var boardNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// Registry opens boards on first use and keeps them for the life of the process.
type Registry struct {
	mu          sync.Mutex
	sessions    map[string]*Session
	store       persistence.BlobStore
	opts        Options
	adapterOpts []persistence.Option
}

// NewRegistry creates a Registry whose boards persist to store.
func NewRegistry(store persistence.BlobStore, opts Options, adapterOpts ...persistence.Option) *Registry {
	return &Registry{
		sessions:    make(map[string]*Session),
		store:       store,
		opts:        opts,
		adapterOpts: adapterOpts,
	}
}

// Get returns the session for board, opening it if needed.
func (r *Registry) Get(ctx context.Context, board string) (*Session, error) {
	if !boardNamePattern.MatchString(board) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBoard, board)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[board]; ok {
		return s, nil
	}
	s, err := Open(ctx, board, persistence.Bind(r.store, board, r.adapterOpts...), r.opts)
	if err != nil {
		return nil, err
	}
	r.sessions[board] = s
	return s, nil
}

// Names lists saved boards and boards opened in this process.
func (r *Registry) Names(ctx context.Context) ([]string, error) {
	keys, err := r.store.Keys(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list boards: %w", persistence.ErrPersist, err)
	}

	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		seen[k] = struct{}{}
	}
	r.mu.Lock()
	for name := range r.sessions {
		seen[name] = struct{}{}
	}
	r.mu.Unlock()

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
