package roster_test

import (
	"math"
	"testing"

	"github.com/mauv0809/scoreboard/internal/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddPlayer(t *testing.T) {
	store := roster.New()

	require.NoError(t, store.AddPlayer("  Alice "))
	require.NoError(t, store.AddPlayer("Bob"))

	assert.Equal(t, []roster.Player{{Name: "Alice"}, {Name: "Bob"}}, store.Players())
}

func TestAddPlayer_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", roster.ErrInvalidName},
		{"whitespace only", " \t ", roster.ErrInvalidName},
		{"duplicate", "Alice", roster.ErrDuplicateName},
		{"duplicate after trim", " Alice  ", roster.ErrDuplicateName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := roster.New(roster.Player{Name: "Alice", Score: 4})
			before := store.Snapshot()

			err := store.AddPlayer(tt.input)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, before, store.Snapshot(), "rejected add must not change the roster")
		})
	}
}

func TestAddPlayer_NamesAreCaseSensitive(t *testing.T) {
	store := roster.New(roster.Player{Name: "alice"})
	require.NoError(t, store.AddPlayer("Alice"))
	assert.Equal(t, 2, store.Len())
}

func TestRenamePlayer(t *testing.T) {
	store := roster.New(roster.Player{Name: "Alice", Score: 3}, roster.Player{Name: "Bob", Score: 1})

	require.NoError(t, store.RenamePlayer(1, " Robert "))
	assert.Equal(t, []roster.Player{{Name: "Alice", Score: 3}, {Name: "Robert", Score: 1}}, store.Players())

	t.Run("keeping own name is allowed", func(t *testing.T) {
		require.NoError(t, store.RenamePlayer(0, "Alice"))
	})

	t.Run("collision with another player", func(t *testing.T) {
		err := store.RenamePlayer(0, "Robert")
		require.ErrorIs(t, err, roster.ErrDuplicateName)
		assert.Equal(t, "Alice", store.Players()[0].Name)
	})

	t.Run("empty name", func(t *testing.T) {
		err := store.RenamePlayer(0, "   ")
		require.ErrorIs(t, err, roster.ErrInvalidName)
	})

	t.Run("unknown index", func(t *testing.T) {
		err := store.RenamePlayer(5, "Zed")
		require.ErrorIs(t, err, roster.ErrPlayerNotFound)
		err = store.RenamePlayer(-1, "Zed")
		require.ErrorIs(t, err, roster.ErrPlayerNotFound)
	})
}

func TestAdjustScore(t *testing.T) {
	store := roster.New(roster.Player{Name: "Alice", Score: 2})

	require.NoError(t, store.AdjustScore(0, 5))
	assert.Equal(t, 7, store.Players()[0].Score)

	require.NoError(t, store.AdjustScore(0, -100))
	assert.Equal(t, 0, store.Players()[0].Score, "score is clamped at zero")

	for i := 0; i < 10; i++ {
		require.NoError(t, store.AdjustScore(0, -1))
		assert.GreaterOrEqual(t, store.Players()[0].Score, 0)
	}

	require.ErrorIs(t, store.AdjustScore(1, 1), roster.ErrPlayerNotFound)
}

func TestAdjustScore_Saturates(t *testing.T) {
	store := roster.New(roster.Player{Name: "Alice", Score: math.MaxInt - 1})
	require.NoError(t, store.AdjustScore(0, 10))
	assert.Equal(t, math.MaxInt, store.Players()[0].Score)
}

func TestResetAllScores(t *testing.T) {
	store := roster.New(roster.Player{Name: "Alice", Score: 2}, roster.Player{Name: "Bob", Score: 9})
	require.NoError(t, store.ResetAllScores())
	for _, p := range store.Players() {
		assert.Equal(t, 0, p.Score)
	}

	empty := roster.New()
	require.ErrorIs(t, empty.ResetAllScores(), roster.ErrEmptyRoster)
}

func TestSnapshotIsIndependent(t *testing.T) {
	store := roster.New(roster.Player{Name: "Alice", Score: 1})
	snap := store.Snapshot()

	require.NoError(t, store.AdjustScore(0, 10))
	require.NoError(t, store.RenamePlayer(0, "Alicia"))
	require.NoError(t, store.AddPlayer("Bob"))

	assert.Equal(t, []roster.Player{{Name: "Alice", Score: 1}}, snap.Players())

	players := snap.Players()
	players[0].Score = 99
	assert.Equal(t, 1, snap.Players()[0].Score, "mutating the returned slice must not leak into the snapshot")
}

func TestRestore(t *testing.T) {
	store := roster.New(roster.Player{Name: "Alice", Score: 1})
	snap := store.Snapshot()

	require.NoError(t, store.AddPlayer("Bob"))
	store.Restore(snap)
	assert.Equal(t, snap, store.Snapshot())

	require.NoError(t, store.AdjustScore(0, 1))
	assert.Equal(t, 1, snap.Players()[0].Score, "restored state must not alias the snapshot")
}
