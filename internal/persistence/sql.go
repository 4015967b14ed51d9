package persistence

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// sqlStore keeps board blobs in the boards table.
type sqlStore struct {
	db *sql.DB
	mu sync.RWMutex
}

var _ BlobStore = (*sqlStore)(nil)

// NewSQLStore creates a BlobStore backed by db. The schema is created by
// database.InitDB.
func NewSQLStore(db *sql.DB) BlobStore {
	return &sqlStore{db: db}
}

// Load returns the blob stored for key, or false when the board has never been saved.
func (s *sqlStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var blob []byte
	err := s.db.QueryRowContext(ctx, "SELECT blob FROM boards WHERE name = ?", key).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return blob, true, nil
}

// Save upserts the blob for key.
func (s *sqlStore) Save(ctx context.Context, key string, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO boards (name, blob, version, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			blob = excluded.blob,
			version = excluded.version,
			updated_at = excluded.updated_at;
	`, key, blob, BlobVersion, time.Now().Unix())
	if err != nil {
		log.Error("Failed to save board", "error", err, "board", key)
		return err
	}
	log.Debug("Saved board", "board", key, "bytes", len(blob))
	return nil
}

// Keys lists every saved board name in alphabetical order.
func (s *sqlStore) Keys(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, "SELECT name FROM boards ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}
