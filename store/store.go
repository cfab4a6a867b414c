// Package store defines the byte-store contracts the cache clients run over.
//
// Implementations MUST be byte-for-byte transparent: Get must return exactly
// the same []byte previously passed to Set for a key (no prepended/appended
// metadata, no re-encoding, no mutation). If a store performs internal
// transforms (e.g. compression), they MUST be fully reversed so that the
// bytes returned by Get are identical to the bytes provided to Set.
//
// Stores are supplied by the caller and never owned by the cache client;
// Close releases only what the adapter itself acquired.
package store

import (
	"context"
	"time"
)

// Store is a minimal scalar byte store with per-key TTL.
// Must be safe for concurrent use.
type Store interface {
	// Get returns (value, true, nil) on hit; (nil, false, nil) on miss.
	// If an IO/remote error happens, return (nil, false, err).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key. ttl > 0 stores with expiry; ttl <= 0
	// stores without.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Del removes a key. Absence of the key is not an error.
	Del(ctx context.Context, key string) error

	// Close releases resources the adapter owns.
	Close(ctx context.Context) error
}

// HashStore is a grouped-object byte store: one container object per key,
// fields addressed by name, the whole container deletable as one unit.
// No per-field or per-container TTL.
type HashStore interface {
	// HGet returns (value, true, nil) when the field exists in the
	// container; (nil, false, nil) when the container or field is missing.
	HGet(ctx context.Context, key, field string) ([]byte, bool, error)

	// HSet stores value under field within the container at key, creating
	// the container if needed.
	HSet(ctx context.Context, key, field string, value []byte) error

	// HDel removes one field. Absence of the container or field is not an
	// error.
	HDel(ctx context.Context, key, field string) error

	// Del removes the whole container and every field in it atomically.
	Del(ctx context.Context, key string) error

	// Close releases resources the adapter owns.
	Close(ctx context.Context) error
}
