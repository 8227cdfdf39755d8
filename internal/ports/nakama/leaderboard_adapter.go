package nakama

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"kickoff/internal/domain"
	"kickoff/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// leaderboardAppendAttempts bounds the optimistic-concurrency retry loop.
const leaderboardAppendAttempts = 3

// NakamaLeaderboardAdapter implements ports.LeaderboardPort on a single
// system-owned storage object. Appends are read-modify-write under the
// object's version, so concurrent finishes from different sessions serialize
// and the capacity bound holds.
type NakamaLeaderboardAdapter struct {
	storage  storageClient
	capacity int
}

// NewNakamaLeaderboardAdapter creates a leaderboard adapter keeping the most
// recent capacity entries.
func NewNakamaLeaderboardAdapter(nk runtime.NakamaModule, capacity int) *NakamaLeaderboardAdapter {
	return &NakamaLeaderboardAdapter{storage: nk, capacity: capacity}
}

// Append adds entry to the persisted window. A version conflict from a
// concurrent append triggers a reload and retry; any other write failure is
// returned so the caller can report the lost result.
func (a *NakamaLeaderboardAdapter) Append(ctx context.Context, entry domain.Entry) error {
	for attempt := 0; attempt < leaderboardAppendAttempts; attempt++ {
		entries, version, err := a.load(ctx)
		if err != nil {
			return err
		}

		entries = domain.AppendBounded(entries, entry, a.capacity)
		value, err := json.Marshal(entries)
		if err != nil {
			return fmt.Errorf("failed to marshal leaderboard: %w", err)
		}

		if version == "" {
			// Conditional create: fail if another append created the object first.
			version = "*"
		}

		_, err = a.storage.StorageWrite(ctx, []*runtime.StorageWrite{
			{
				Collection:      leaderboardCollection,
				Key:             leaderboardKey,
				Value:           string(value),
				Version:         version,
				PermissionRead:  runtime.STORAGE_PERMISSION_PUBLIC_READ,
				PermissionWrite: runtime.STORAGE_PERMISSION_NO_WRITE,
			},
		})
		if err == nil {
			return nil
		}
		if !errors.Is(err, runtime.ErrStorageRejectedVersion) {
			return fmt.Errorf("failed to write leaderboard: %w", err)
		}
	}
	return fmt.Errorf("failed to append leaderboard entry: too many version conflicts")
}

// LoadAll returns entries oldest to newest. Missing or corrupt storage loads
// as an empty leaderboard.
func (a *NakamaLeaderboardAdapter) LoadAll(ctx context.Context) ([]domain.Entry, error) {
	entries, _, err := a.load(ctx)
	return entries, err
}

func (a *NakamaLeaderboardAdapter) load(ctx context.Context) ([]domain.Entry, string, error) {
	objects, err := a.storage.StorageRead(ctx, []*runtime.StorageRead{
		{
			Collection: leaderboardCollection,
			Key:        leaderboardKey,
		},
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to read leaderboard: %w", err)
	}
	if len(objects) == 0 {
		return nil, "", nil
	}

	var entries []domain.Entry
	if err := json.Unmarshal([]byte(objects[0].GetValue()), &entries); err != nil {
		// Unreadable content starts a fresh window rather than failing.
		return nil, objects[0].GetVersion(), nil
	}
	return entries, objects[0].GetVersion(), nil
}

var _ ports.LeaderboardPort = (*NakamaLeaderboardAdapter)(nil)
