package storage

import "context"

// KV is the persistent string key-value store the whole application state
// is mirrored into. Implementations must make SetAll atomic across keys: a
// reader never observes a mix of old and new documents.
type KV interface {
	// Get returns the stored value and whether the key existed. A missing
	// key is not an error.
	Get(ctx context.Context, key string) (string, bool, error)
	// SetAll writes every entry in a single atomic operation.
	SetAll(ctx context.Context, entries map[string]string) error
}

// Flusher mirrors the current in-memory state to the KV store. Feature
// services call it strictly after each successful mutation.
type Flusher interface {
	Flush(ctx context.Context) error
}
