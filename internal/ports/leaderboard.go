package ports

import (
	"context"

	"kickoff/internal/domain"
)

// LeaderboardPort persists the bounded window of finished-match results.
// The leaderboard is shared across sessions; implementations must serialize
// concurrent appends so the capacity bound holds and no append is lost.
type LeaderboardPort interface {
	// Append adds entry and truncates the window to the configured capacity.
	// A write failure is returned to the caller: a finished match's result
	// must not be lost silently.
	Append(ctx context.Context, entry domain.Entry) error

	// LoadAll returns entries oldest to newest. Missing or corrupt storage
	// loads as an empty leaderboard, never an error.
	LoadAll(ctx context.Context) ([]domain.Entry, error)
}
