package roster

// Player is a single scoreboard entry. The name is the player's identity
// while it is on the roster.
type Player struct {
	Name  string `json:"name" msgpack:"name"`
	Score int    `json:"score" msgpack:"score"`
}

// Snapshot is an immutable copy of a roster at one instant.
type Snapshot struct {
	players []Player
}

// NewSnapshot copies players into a new Snapshot.
func NewSnapshot(players []Player) Snapshot {
	return Snapshot{players: clonePlayers(players)}
}

// Players returns a copy of the players in roster order.
func (s Snapshot) Players() []Player {
	return clonePlayers(s.players)
}

// Len returns the number of players in the snapshot.
func (s Snapshot) Len() int {
	return len(s.players)
}

// Player returns the player at index.
func (s Snapshot) Player(index int) (Player, bool) {
	if index < 0 || index >= len(s.players) {
		return Player{}, false
	}
	return s.players[index], true
}

func clonePlayers(players []Player) []Player {
	out := make([]Player, len(players))
	copy(out, players)
	return out
}
