package kv

import "context"

// Repository describes the key-value operations used by the session store.
type Repository interface {
	// Get returns the value stored under key, or (nil, nil) if absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set upserts all given pairs atomically.
	Set(ctx context.Context, values map[string][]byte) error

	// Delete removes the given keys atomically. Missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error

	Close() error
}
