package session

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/mauv0809/scoreboard/internal/history"
	"github.com/mauv0809/scoreboard/internal/metrics"
	"github.com/mauv0809/scoreboard/internal/notifier"
	"github.com/mauv0809/scoreboard/internal/persistence"
	"github.com/mauv0809/scoreboard/internal/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	session  *Session
	store    *persistence.Mock
	notifier *notifier.Mock
	metrics  *metrics.Mock
}

func setupSession(t *testing.T, players ...roster.Player) testEnv {
	t.Helper()

	store := persistence.NewMock()
	if len(players) > 0 {
		blob, err := persistence.Encode(roster.NewSnapshot(players))
		require.NoError(t, err)
		store.Put("office", blob)
	}
	n := notifier.NewMock()
	m := metrics.NewMock()

	s, err := Open(context.Background(), "office", persistence.Bind(store, "office"), Options{
		Notifiers: []notifier.Notifier{n},
		Metrics:   m,
	})
	require.NoError(t, err)
	return testEnv{session: s, store: store, notifier: n, metrics: m}
}

func (e testEnv) snapshot() roster.Snapshot {
	return e.session.store.Snapshot()
}

func (e testEnv) saved(t *testing.T) roster.Snapshot {
	t.Helper()
	blob, ok, err := e.store.Load(context.Background(), "office")
	require.NoError(t, err)
	require.True(t, ok, "board should have been saved")
	s, err := persistence.Decode(blob)
	require.NoError(t, err)
	return s
}

func TestOpen_LoadsSavedBoard(t *testing.T) {
	env := setupSession(t, roster.Player{Name: "Waqas", Score: 3}, roster.Player{Name: "Ross", Score: 1})

	board := env.session.Board()
	require.Len(t, board.Roster, 2)
	assert.Equal(t, "Waqas: 3 points", board.Roster[0].Label)
	assert.False(t, board.CanUndo, "history is not persisted")
	assert.False(t, board.CanRedo)
}

func TestOpen_IgnoresCorruptBlob(t *testing.T) {
	store := persistence.NewMock()
	store.Put("office", []byte(`[{"name":"A"},{"name":"A"}]`))

	s, err := Open(context.Background(), "office", persistence.Bind(store, "office"), Options{})
	require.NoError(t, err)
	assert.True(t, s.Board().Leaderboard.NoPlayers)
}

func TestOpen_LoadFailure(t *testing.T) {
	store := persistence.NewMock()
	store.LoadFunc = func(key string) ([]byte, bool, error) { return nil, false, errors.New("connection refused") }

	_, err := Open(context.Background(), "office", persistence.Bind(store, "office"), Options{})
	require.ErrorIs(t, err, persistence.ErrPersist)
}

func TestApply_FullProtocol(t *testing.T) {
	env := setupSession(t)
	ctx := context.Background()

	res, err := env.session.AddPlayer(ctx, "Alice")
	require.NoError(t, err)
	assert.Empty(t, res.Warning)
	assert.True(t, res.Board.CanUndo)

	assert.Equal(t, env.snapshot(), env.saved(t), "state is saved after every committed mutation")
	calls := env.notifier.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "added Alice", calls[0].Command)
	assert.NotEmpty(t, calls[0].ID)
	assert.Equal(t, res.Board, calls[0].Board)

	assert.Equal(t, 1, env.metrics.CommandsApplied("add"))
	undo, redo := env.metrics.HistoryDepth("office")
	assert.Equal(t, 1, undo)
	assert.Equal(t, 0, redo)
}

func TestApply_RejectedCommandHasNoSideEffects(t *testing.T) {
	env := setupSession(t, roster.Player{Name: "Alice", Score: 2})
	ctx := context.Background()
	before := env.snapshot()

	tests := []struct {
		name    string
		cmd     Command
		wantErr error
	}{
		{"duplicate add", AddPlayer("Alice"), roster.ErrDuplicateName},
		{"blank add", AddPlayer("   "), roster.ErrInvalidName},
		{"blank rename", Rename(0, ""), roster.ErrInvalidName},
		{"rename unknown index", Rename(3, "Bob"), roster.ErrPlayerNotFound},
		{"adjust unknown index", AdjustScore(-1, 1), roster.ErrPlayerNotFound},
		{"undo with no history", Undo(), history.ErrHistoryEmpty},
		{"redo with no history", Redo(), history.ErrHistoryEmpty},
		{"unknown kind", Command{Kind: "delete"}, ErrUnknownCommand},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.session.Apply(ctx, tt.cmd)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, before, env.snapshot())
			assert.False(t, env.session.history.CanUndo(), "rejected commands must not be committed")
		})
	}

	assert.Zero(t, env.store.SaveCount(), "rejected commands must not be saved")
	assert.Empty(t, env.notifier.Calls(), "rejected commands must not refresh views")
	assert.Equal(t, 2, env.metrics.CommandsRejected("add"))
}

func TestAddPlayerTwice(t *testing.T) {
	env := setupSession(t)
	ctx := context.Background()

	_, err := env.session.AddPlayer(ctx, "Alice")
	require.NoError(t, err)
	_, err = env.session.AddPlayer(ctx, "Alice")
	require.ErrorIs(t, err, roster.ErrDuplicateName)
	assert.Len(t, env.session.Board().Roster, 1)
}

func TestResetAll(t *testing.T) {
	t.Run("empty roster", func(t *testing.T) {
		env := setupSession(t)
		_, err := env.session.ResetAll(context.Background())
		require.ErrorIs(t, err, roster.ErrEmptyRoster)
	})

	t.Run("zeroes scores and is undoable", func(t *testing.T) {
		env := setupSession(t, roster.Player{Name: "Alice", Score: 4}, roster.Player{Name: "Bob", Score: 7})
		ctx := context.Background()
		before := env.snapshot()

		res, err := env.session.ResetAll(ctx)
		require.NoError(t, err)
		for _, entry := range res.Board.Roster {
			assert.Zero(t, entry.Score)
		}

		_, err = env.session.Undo(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, env.snapshot())
		assert.Equal(t, before, env.saved(t), "undo is saved too")
	})
}

func TestUndoRedo_RestoresExactStates(t *testing.T) {
	env := setupSession(t)
	ctx := context.Background()
	rng := rand.New(rand.NewSource(42))
	names := []string{"Alice", "Bob", "Cara", "Dan", "Eve"}

	randomCommand := func() Command {
		n := env.session.store.Len()
		switch k := rng.Intn(4); {
		case k == 0 || n == 0:
			return AddPlayer(names[rng.Intn(len(names))])
		case k == 1:
			return Rename(rng.Intn(n), names[rng.Intn(len(names))])
		case k == 2:
			return AdjustScore(rng.Intn(n), rng.Intn(11)-5)
		default:
			return ResetAll()
		}
	}

	for i := 0; i < 200; i++ {
		cmd := randomCommand()
		before := env.snapshot()
		if _, err := env.session.Apply(ctx, cmd); err != nil {
			assert.Equal(t, before, env.snapshot(), "rejected %s changed state", cmd)
			continue
		}
		after := env.snapshot()
		for _, p := range after.Players() {
			assert.GreaterOrEqual(t, p.Score, 0)
		}

		_, err := env.session.Undo(ctx)
		require.NoError(t, err)
		require.Equal(t, before, env.snapshot(), "undo after %s", cmd)

		_, err = env.session.Redo(ctx)
		require.NoError(t, err)
		require.Equal(t, after, env.snapshot(), "redo after %s", cmd)
	}
}

func TestNewCommandClearsRedo(t *testing.T) {
	env := setupSession(t)
	ctx := context.Background()

	_, err := env.session.AddPlayer(ctx, "Alice")
	require.NoError(t, err)
	res, err := env.session.Undo(ctx)
	require.NoError(t, err)
	assert.True(t, res.Board.CanRedo)

	res, err = env.session.AddPlayer(ctx, "Bob")
	require.NoError(t, err)
	assert.False(t, res.Board.CanRedo)

	_, err = env.session.Redo(ctx)
	require.ErrorIs(t, err, history.ErrHistoryEmpty)
	assert.Equal(t, []roster.Player{{Name: "Bob"}}, env.snapshot().Players())
}

func TestAdjustScore_NeverNegative(t *testing.T) {
	env := setupSession(t, roster.Player{Name: "Alice", Score: 1})
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		res, err := env.session.AdjustScore(ctx, 0, -1)
		require.NoError(t, err)
		assert.Equal(t, 0, res.Board.Roster[0].Score)
	}
	res, err := env.session.AdjustScore(ctx, 0, -1000)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Board.Roster[0].Score)
}

func TestRename_KeepsPositionAndScore(t *testing.T) {
	env := setupSession(t, roster.Player{Name: "Alice", Score: 4}, roster.Player{Name: "Bob", Score: 7})

	res, err := env.session.Rename(context.Background(), 0, "Alicia")
	require.NoError(t, err)
	assert.Equal(t, "Alicia", res.Board.Roster[0].Name)
	assert.Equal(t, 4, res.Board.Roster[0].Score)
	assert.Equal(t, "Bob", res.Board.Roster[1].Name)
}

func TestApply_PersistFailureKeepsChange(t *testing.T) {
	env := setupSession(t)
	env.store.SaveFunc = func(key string, blob []byte) error { return errors.New("disk full") }
	ctx := context.Background()

	res, err := env.session.AddPlayer(ctx, "Alice")
	require.ErrorIs(t, err, persistence.ErrPersist)
	assert.NotEmpty(t, res.Warning)
	require.Len(t, res.Board.Roster, 1, "in-memory change is not rolled back")
	assert.True(t, res.Board.CanUndo)
	assert.Len(t, env.notifier.Calls(), 1, "views still refresh")
	assert.Equal(t, 1, env.metrics.PersistFailures())

	env.store.SaveFunc = nil
	_, err = env.session.Undo(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, env.saved(t).Len())
}

func TestApply_NotifierFailureIsNotReturned(t *testing.T) {
	env := setupSession(t)
	env.notifier.BoardChangedFunc = func(change notifier.Change) error { return errors.New("slack is down") }

	_, err := env.session.AddPlayer(context.Background(), "Alice")
	require.NoError(t, err)
}

func TestLeaderboardDoesNotReorderRoster(t *testing.T) {
	env := setupSession(t, roster.Player{Name: "Cara", Score: 5}, roster.Player{Name: "Alice", Score: 10})

	board := env.session.Board()
	assert.Equal(t, "Alice", board.Leaderboard.Entries[0].Name)
	assert.Equal(t, "Cara", board.Roster[0].Name)
	assert.Equal(t, "Cara", env.session.Board().Roster[0].Name)
}

func TestHistoryLimit(t *testing.T) {
	store := persistence.NewMock()
	s, err := Open(context.Background(), "office", persistence.Bind(store, "office"), Options{HistoryLimit: 2})
	require.NoError(t, err)
	ctx := context.Background()

	for _, name := range []string{"A", "B", "C"} {
		_, err := s.AddPlayer(ctx, name)
		require.NoError(t, err)
	}
	_, err = s.Undo(ctx)
	require.NoError(t, err)
	_, err = s.Undo(ctx)
	require.NoError(t, err)
	_, err = s.Undo(ctx)
	require.ErrorIs(t, err, history.ErrNothingToUndo)
	assert.Len(t, s.Board().Roster, 1)
}
