package domain

import "sort"

const (
	highImpactPoints   = 10
	mediumImpactPoints = 5
	lowImpactPoints    = 2
)

type LeaderboardEntry struct {
	User     User
	Score    int
	Rank     int
	Stats    UserStats
	HasStats bool
}

func Score(s UserStats) int {
	return s.HighImpactPRs*highImpactPoints + s.MediumImpactPRs*mediumImpactPoints + s.LowImpactPRs*lowImpactPoints
}

// RankLeaderboard scores every user and orders them by score, highest first.
// Equal scores keep their order from users. Ranks run 1..N with no shared ranks.
// Users without stats score 0.
func RankLeaderboard(users []UserWithStats) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(users))
	for _, u := range users {
		entry := LeaderboardEntry{User: u.User}
		if u.Stats != nil {
			entry.Stats = *u.Stats
			entry.HasStats = true
		}
		entry.Score = Score(entry.Stats)
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries
}

// FindEntry returns the leaderboard entry of userID.
func FindEntry(entries []LeaderboardEntry, userID string) (LeaderboardEntry, bool) {
	for _, e := range entries {
		if e.User.UserID == userID {
			return e, true
		}
	}
	return LeaderboardEntry{}, false
}
