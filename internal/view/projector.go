package view

import (
	"fmt"
	"sort"

	"github.com/mauv0809/scoreboard/internal/roster"
)

// Roster projects the players in store order.
func Roster(s roster.Snapshot) []RosterEntry {
	players := s.Players()
	entries := make([]RosterEntry, len(players))
	for i, p := range players {
		entries[i] = RosterEntry{
			Index: i,
			Name:  p.Name,
			Score: p.Score,
			Label: fmt.Sprintf("%s: %d points", p.Name, p.Score),
		}
	}
	return entries
}

// LeaderboardOf ranks a copy of the players by score, highest first.
// Equal scores keep their roster order and share a rank.
func LeaderboardOf(s roster.Snapshot) Leaderboard {
	players := s.Players()
	if len(players) == 0 {
		return Leaderboard{NoPlayers: true}
	}

	entries := make([]LeaderboardEntry, len(players))
	maxScore := 0
	for i, p := range players {
		entries[i] = LeaderboardEntry{Index: i, Name: p.Name, Score: p.Score}
		if p.Score > maxScore {
			maxScore = p.Score
		}
	}
	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].Score > entries[b].Score
	})

	denominator := float64(max(1, maxScore))
	for i := range entries {
		e := &entries[i]
		if i > 0 && e.Score == entries[i-1].Score {
			e.Rank = entries[i-1].Rank
		} else {
			e.Rank = i + 1
		}
		e.Percent = float64(e.Score) / denominator
		e.Tier = TierFor(e.Percent)
		e.Leader = maxScore > 0 && e.Score == maxScore
	}

	return Leaderboard{MaxScore: maxScore, Entries: entries}
}

// TierFor maps a score ratio to its colour band.
func TierFor(percent float64) Tier {
	switch {
	case percent >= 0.7:
		return TierHigh
	case percent >= 0.4:
		return TierMedium
	case percent > 0:
		return TierLow
	default:
		return TierZero
	}
}

// Project builds the full board view for a snapshot.
func Project(name string, s roster.Snapshot, canUndo, canRedo bool) Board {
	return Board{
		Name:        name,
		Roster:      Roster(s),
		Leaderboard: LeaderboardOf(s),
		CanUndo:     canUndo,
		CanRedo:     canRedo,
	}
}
