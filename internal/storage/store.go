// Package storage persists session and record snapshots behind a small
// key-value contract. Values are UTF-8 JSON; keys are a fixed session key
// plus one key per interaction record.
package storage

import "context"

// Well-known keys.
const (
	// SessionKey holds the persisted session snapshot.
	SessionKey = "session"

	// RecordKeyPrefix namespaces interaction record snapshots.
	RecordKeyPrefix = "record:"
)

// RecordKey returns the storage key for a record id.
func RecordKey(id string) string {
	return RecordKeyPrefix + id
}

// Store is the key-value persistence boundary consumed by the autosave
// scheduler and the session manager.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set writes the value for key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error

	// List returns all key/value pairs whose key starts with prefix,
	// ordered by key.
	List(ctx context.Context, prefix string) (map[string]string, error)
}
