package ports

import (
	"context"
	"errors"

	"kickoff/internal/domain"
)

// ErrNoMatch indicates no match session exists for the user.
// Callers are expected to route the player to match start rather than
// invoke in-match operations.
var ErrNoMatch = errors.New("no match in progress")

// SessionPort persists each player's match state blob between requests.
type SessionPort interface {
	// Load returns the user's current match state, or ErrNoMatch when absent.
	Load(ctx context.Context, userID string) (*domain.Match, error)

	// Save writes the user's match state, replacing any previous blob.
	Save(ctx context.Context, userID string, match *domain.Match) error

	// Clear removes the user's match state. Clearing an absent blob is not an error.
	Clear(ctx context.Context, userID string) error
}
