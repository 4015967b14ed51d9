package persistence_test

import (
	"context"
	"testing"

	"github.com/mauv0809/scoreboard/internal/database"
	"github.com/mauv0809/scoreboard/internal/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (persistence.BlobStore, func()) {
	t.Helper()

	db, teardown, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)

	return persistence.NewSQLStore(db), teardown
}

func TestSQLStore_SaveAndLoad(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	_, ok, err := store.Load(ctx, "office")
	require.NoError(t, err)
	assert.False(t, ok, "unknown board should not be found")

	require.NoError(t, store.Save(ctx, "office", []byte{1, 2, 3}))
	blob, ok, err := store.Load(ctx, "office")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte{1, 2, 3}, blob)

	require.NoError(t, store.Save(ctx, "office", []byte{4}))
	blob, _, err = store.Load(ctx, "office")
	require.NoError(t, err)
	assert.Equal(t, []byte{4}, blob, "save should overwrite the previous blob")
}

func TestSQLStore_Keys(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "zeta", []byte{1}))
	require.NoError(t, store.Save(ctx, "alpha", []byte{1}))

	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, keys)
}
