package nakama

import (
	"context"
	"fmt"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
)

// mockStorage implements storageClient with versioned in-memory objects.
type mockStorage struct {
	objects map[string]*api.StorageObject
	seq     int

	readErr      error
	writeErr     error
	rejectWrites int // reject this many writes with ErrStorageRejectedVersion
}

func newMockStorage() *mockStorage {
	return &mockStorage{objects: make(map[string]*api.StorageObject)}
}

func storageKeyOf(collection, key, userID string) string {
	return collection + "/" + key + "/" + userID
}

func (m *mockStorage) StorageRead(ctx context.Context, reads []*runtime.StorageRead) ([]*api.StorageObject, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	var out []*api.StorageObject
	for _, r := range reads {
		if obj, ok := m.objects[storageKeyOf(r.Collection, r.Key, r.UserID)]; ok {
			out = append(out, obj)
		}
	}
	return out, nil
}

func (m *mockStorage) StorageWrite(ctx context.Context, writes []*runtime.StorageWrite) ([]*api.StorageObjectAck, error) {
	if m.writeErr != nil {
		return nil, m.writeErr
	}
	if m.rejectWrites > 0 {
		m.rejectWrites--
		return nil, runtime.ErrStorageRejectedVersion
	}
	var acks []*api.StorageObjectAck
	for _, w := range writes {
		key := storageKeyOf(w.Collection, w.Key, w.UserID)
		existing, exists := m.objects[key]
		switch w.Version {
		case "":
			// Unconditional write.
		case "*":
			if exists {
				return nil, runtime.ErrStorageRejectedVersion
			}
		default:
			if !exists || existing.Version != w.Version {
				return nil, runtime.ErrStorageRejectedVersion
			}
		}
		m.seq++
		m.objects[key] = &api.StorageObject{
			Collection: w.Collection,
			Key:        w.Key,
			UserId:     w.UserID,
			Value:      w.Value,
			Version:    fmt.Sprintf("v%d", m.seq),
		}
		acks = append(acks, &api.StorageObjectAck{Collection: w.Collection, Key: w.Key, UserId: w.UserID})
	}
	return acks, nil
}

func (m *mockStorage) StorageDelete(ctx context.Context, deletes []*runtime.StorageDelete) error {
	for _, d := range deletes {
		delete(m.objects, storageKeyOf(d.Collection, d.Key, d.UserID))
	}
	return nil
}

// noopLogger implements runtime.Logger for tests that only need to satisfy the interface.
type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) WithField(string, interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) WithFields(map[string]interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) Fields() map[string]interface{} {
	return nil
}
