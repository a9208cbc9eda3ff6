package models

import "sort"

// MaxLeaderboardEntries caps the global leaderboard.
const MaxLeaderboardEntries = 100

// LeaderboardEntry represents one player's standing on the global leaderboard
type LeaderboardEntry struct {
	// Owner is the player's identity
	Owner string

	// Name is the display name recorded at their last win
	Name string

	// Wins is the total settled wins
	Wins uint64

	// TotalScore is the sum of winning round scores
	TotalScore uint64

	// LifetimeWinnings is the sum of payouts received
	LifetimeWinnings Amount
}

// Leaderboard is the global standings, kept sorted by wins descending and
// truncated to MaxLeaderboardEntries. Ties keep insertion order.
type Leaderboard struct {
	Entries []*LeaderboardEntry
}

// Record upserts the winner's entry, re-sorts by wins descending (stable, so
// ties keep insertion order) and truncates to the cap.
func (l *Leaderboard) Record(owner, name string, score uint64, payout Amount) {
	var entry *LeaderboardEntry
	for _, e := range l.Entries {
		if e.Owner == owner {
			entry = e
			break
		}
	}

	if entry == nil {
		entry = &LeaderboardEntry{Owner: owner, Name: name}
		l.Entries = append(l.Entries, entry)
	}

	entry.Wins++
	entry.TotalScore += score
	entry.LifetimeWinnings = entry.LifetimeWinnings.SaturatingAdd(payout)

	sort.SliceStable(l.Entries, func(i, j int) bool {
		return l.Entries[i].Wins > l.Entries[j].Wins
	})

	if len(l.Entries) > MaxLeaderboardEntries {
		l.Entries = l.Entries[:MaxLeaderboardEntries]
	}
}
