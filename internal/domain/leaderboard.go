package domain

// Entry is one finished-match result on the leaderboard.
// It is created exactly once, at game over, and never mutated afterwards.
type Entry struct {
	Name     string `json:"name"`
	ChosenID string `json:"chosen"`
	Score    Score  `json:"score"`
	Health   int    `json:"health"`
	Time     string `json:"time"` // RFC3339 UTC
}

// AppendBounded appends e to entries and drops the oldest entries beyond
// capacity, keeping the most recent capacity results in insertion order.
// Eviction is the normal windowing behavior, not an error. A capacity of
// zero or less disables the bound.
func AppendBounded(entries []Entry, e Entry, capacity int) []Entry {
	entries = append(entries, e)
	if capacity > 0 && len(entries) > capacity {
		entries = entries[len(entries)-capacity:]
	}
	return entries
}
