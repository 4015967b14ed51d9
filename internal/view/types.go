package view

// Tier classifies a score relative to the current maximum.
type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
	TierZero   Tier = "zero"
)

// RosterEntry is one line of the roster list, in store order.
type RosterEntry struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Score int    `json:"score"`
	Label string `json:"label"`
}

// LeaderboardEntry is one ranked line of the leaderboard.
type LeaderboardEntry struct {
	Rank    int     `json:"rank"`
	Index   int     `json:"index"`
	Name    string  `json:"name"`
	Score   int     `json:"score"`
	Percent float64 `json:"percent"`
	Tier    Tier    `json:"tier"`
	Leader  bool    `json:"leader"`
}

// Leaderboard is the score-ordered projection. NoPlayers is set instead of
// returning an empty ranking when the roster is empty.
type Leaderboard struct {
	NoPlayers bool               `json:"no_players"`
	MaxScore  int                `json:"max_score"`
	Entries   []LeaderboardEntry `json:"entries"`
}

// Board bundles both projections with the undo/redo affordances.
type Board struct {
	Name        string        `json:"board"`
	Roster      []RosterEntry `json:"roster"`
	Leaderboard Leaderboard   `json:"leaderboard"`
	CanUndo     bool          `json:"can_undo"`
	CanRedo     bool          `json:"can_redo"`
}
