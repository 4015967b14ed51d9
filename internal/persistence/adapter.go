package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/sethvargo/go-retry"
)

const defaultBackoff = 100 * time.Millisecond

// ErrPersist wraps every storage read or write failure.
var ErrPersist = errors.New("persistence failure")

type boundAdapter struct {
	store    BlobStore
	key      string
	attempts uint64
	backoff  time.Duration
}

// Option configures an adapter returned by Bind.
type Option func(*boundAdapter)

// WithRetry retries failed saves up to attempts extra times, waiting backoff between tries.
func WithRetry(attempts uint64, backoff time.Duration) Option {
	return func(a *boundAdapter) {
		a.attempts = attempts
		a.backoff = backoff
	}
}

// Bind returns an Adapter that reads and writes one board in store.
func Bind(store BlobStore, key string, opts ...Option) Adapter {
	a := &boundAdapter{store: store, key: key}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *boundAdapter) Load(ctx context.Context) ([]byte, bool, error) {
	blob, ok, err := a.store.Load(ctx, a.key)
	if err != nil {
		return nil, false, fmt.Errorf("%w: load board %q: %w", ErrPersist, a.key, err)
	}
	return blob, ok, nil
}

func (a *boundAdapter) Save(ctx context.Context, blob []byte) error {
	if a.attempts == 0 {
		if err := a.store.Save(ctx, a.key, blob); err != nil {
			return fmt.Errorf("%w: save board %q: %w", ErrPersist, a.key, err)
		}
		return nil
	}

	wait := a.backoff
	if wait <= 0 {
		wait = defaultBackoff
	}
	backoff := retry.WithMaxRetries(a.attempts, retry.NewConstant(wait))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := a.store.Save(ctx, a.key, blob); err != nil {
			log.Warn("Board save failed, retrying", "board", a.key, "error", err)
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: save board %q: %w", ErrPersist, a.key, err)
	}
	return nil
}
