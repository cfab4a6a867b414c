package rediscache

import (
	"context"
	"time"

	c "github.com/nkanish2002/rediscache/codec"
	st "github.com/nkanish2002/rediscache/store"
)

// Cache is the scalar read-through cache client. Each identity maps to one
// store key with an independent optional TTL. V is the caller's value type;
// serialization is handled by a pluggable Codec[V].
type Cache[V any] interface {
	// Get returns the cached value for identity. On a miss it behaves
	// exactly like Set: the synchronization function is invoked with
	// (identity, extra...), the result is persisted and returned.
	Get(ctx context.Context, identity string, extra ...any) (V, error)

	// Set recomputes the value via the synchronization function, persists
	// it under the composed key and returns it.
	Set(ctx context.Context, identity string, extra ...any) (V, error)

	// SetValue persists the provided value directly, bypassing the
	// synchronization function entirely.
	SetValue(ctx context.Context, identity string, value V) (V, error)

	// Delete removes the entry. Absence of the key is not an error.
	Delete(ctx context.Context, identity string) error
}

// HashCache groups many identities under one container object per group
// identity. Fields share the container's lifetime; there is no per-field TTL.
type HashCache[V any] interface {
	Get(ctx context.Context, groupID, identity string, extra ...any) (V, error)
	Set(ctx context.Context, groupID, identity string, extra ...any) (V, error)
	SetValue(ctx context.Context, groupID, identity string, value V) (V, error)
	Delete(ctx context.Context, groupID, identity string) error

	// DeleteGroup removes the whole container and every field in it.
	DeleteGroup(ctx context.Context, groupID string) error
}

// Options configure a scalar Cache. Store, Namespace, Codec and exactly one
// of SyncFunc/AsyncSyncFunc (per the Asynchronous flag) are required.
type Options[V any] struct {
	// Required
	Namespace string // logical entity type, e.g. "student", "order"
	Store     st.Store
	Codec     c.Codec[V]

	// Synchronization function. If Asynchronous is false, SyncFunc must be
	// set; if true, AsyncSyncFunc must be set. The flag is fixed at
	// construction, never detected from the function at call time.
	SyncFunc      SyncFunc[V]
	AsyncSyncFunc AsyncSyncFunc[V]
	Asynchronous  bool

	TTL    time.Duration // per-entry expiry; 0 => no expiry
	Logger Logger        // if nil, NopLogger is used
	Hooks  Hooks         // if nil, NopHooks is used
}

// HashOptions configure a HashCache. There is deliberately no TTL field:
// the grouped container primitive does not support per-field expiry.
type HashOptions[V any] struct {
	// Required
	GroupNamespace string // container entity type, e.g. "class"
	Namespace      string // field entity type, e.g. "student"
	Store          st.HashStore
	Codec          c.Codec[V]

	SyncFunc      SyncFunc[V]
	AsyncSyncFunc AsyncSyncFunc[V]
	Asynchronous  bool

	Logger Logger
	Hooks  Hooks
}

// New constructs a scalar Cache. Namespace is validated eagerly so malformed
// configuration fails here rather than on the first store call.
func New[V any](opts Options[V]) (Cache[V], error) {
	return newCache[V](opts)
}

// NewHash constructs a HashCache over a grouped container store.
func NewHash[V any](opts HashOptions[V]) (HashCache[V], error) {
	return newHashCache[V](opts)
}
