package nakama

import (
	"context"
	"encoding/json"
	"fmt"

	"kickoff/internal/domain"
	"kickoff/internal/ports"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
)

// storageClient is the subset of runtime.NakamaModule the adapters use.
// Declared locally so tests can substitute a mock.
type storageClient interface {
	StorageRead(ctx context.Context, reads []*runtime.StorageRead) ([]*api.StorageObject, error)
	StorageWrite(ctx context.Context, writes []*runtime.StorageWrite) ([]*api.StorageObjectAck, error)
	StorageDelete(ctx context.Context, deletes []*runtime.StorageDelete) error
}

// NakamaSessionAdapter implements ports.SessionPort using Nakama's per-user
// storage engine. Each player's match state lives in a single server-owned
// object keyed by their user id.
type NakamaSessionAdapter struct {
	storage storageClient
}

// NewNakamaSessionAdapter creates a new session adapter.
func NewNakamaSessionAdapter(nk runtime.NakamaModule) *NakamaSessionAdapter {
	return &NakamaSessionAdapter{storage: nk}
}

// Load returns the user's current match state. An absent blob, and a blob
// that no longer parses, both report ports.ErrNoMatch: either way the player
// has no usable match in progress and must start over.
func (a *NakamaSessionAdapter) Load(ctx context.Context, userID string) (*domain.Match, error) {
	objects, err := a.storage.StorageRead(ctx, []*runtime.StorageRead{
		{
			Collection: sessionCollection,
			Key:        sessionKey,
			UserID:     userID,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read match session: %w", err)
	}
	if len(objects) == 0 {
		return nil, ports.ErrNoMatch
	}

	var match domain.Match
	if err := json.Unmarshal([]byte(objects[0].GetValue()), &match); err != nil {
		return nil, ports.ErrNoMatch
	}
	return &match, nil
}

// Save writes the user's match state, replacing any previous blob.
func (a *NakamaSessionAdapter) Save(ctx context.Context, userID string, match *domain.Match) error {
	value, err := json.Marshal(match)
	if err != nil {
		return fmt.Errorf("failed to marshal match session: %w", err)
	}

	_, err = a.storage.StorageWrite(ctx, []*runtime.StorageWrite{
		{
			Collection:      sessionCollection,
			Key:             sessionKey,
			UserID:          userID,
			Value:           string(value),
			PermissionRead:  runtime.STORAGE_PERMISSION_OWNER_READ,
			PermissionWrite: runtime.STORAGE_PERMISSION_NO_WRITE,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to write match session: %w", err)
	}
	return nil
}

// Clear removes the user's match state.
func (a *NakamaSessionAdapter) Clear(ctx context.Context, userID string) error {
	err := a.storage.StorageDelete(ctx, []*runtime.StorageDelete{
		{
			Collection: sessionCollection,
			Key:        sessionKey,
			UserID:     userID,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to clear match session: %w", err)
	}
	return nil
}

var _ ports.SessionPort = (*NakamaSessionAdapter)(nil)
