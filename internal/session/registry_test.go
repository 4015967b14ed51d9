package session

import (
	"context"
	"testing"

	"github.com/mauv0809/scoreboard/internal/persistence"
	"github.com/mauv0809/scoreboard/internal/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Get(t *testing.T) {
	store := persistence.NewMock()
	reg := NewRegistry(store, Options{})
	ctx := context.Background()

	office, err := reg.Get(ctx, "office")
	require.NoError(t, err)
	again, err := reg.Get(ctx, "office")
	require.NoError(t, err)
	assert.Same(t, office, again, "boards are opened once")

	home, err := reg.Get(ctx, "home")
	require.NoError(t, err)
	_, err = office.AddPlayer(ctx, "Alice")
	require.NoError(t, err)
	assert.True(t, home.Board().Leaderboard.NoPlayers, "boards are independent")
}

func TestRegistry_LoadsSavedBoards(t *testing.T) {
	store := persistence.NewMock()
	blob, err := persistence.Encode(roster.NewSnapshot([]roster.Player{{Name: "Asia"}}))
	require.NoError(t, err)
	store.Put("club", blob)

	reg := NewRegistry(store, Options{})
	s, err := reg.Get(context.Background(), "club")
	require.NoError(t, err)
	assert.Equal(t, "Asia", s.Board().Roster[0].Name)
}

func TestRegistry_InvalidBoardName(t *testing.T) {
	reg := NewRegistry(persistence.NewMock(), Options{})
	for _, name := range []string{"", "has space", "../etc", string(make([]byte, 65))} {
		_, err := reg.Get(context.Background(), name)
		assert.ErrorIs(t, err, ErrInvalidBoard, "board %q", name)
	}
}

func TestRegistry_Names(t *testing.T) {
	store := persistence.NewMock()
	store.Put("zeta", []byte(`[]`))
	reg := NewRegistry(store, Options{})
	ctx := context.Background()

	_, err := reg.Get(ctx, "alpha")
	require.NoError(t, err)

	names, err := reg.Names(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, names)
}
