package persistence

import "context"

// BlobStore is durable key-value storage for encoded boards.
type BlobStore interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, blob []byte) error
	Keys(ctx context.Context) ([]string, error)
}

// Adapter is a BlobStore bound to a single board.
type Adapter interface {
	Load(ctx context.Context) ([]byte, bool, error)
	Save(ctx context.Context, blob []byte) error
}
