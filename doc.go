// Package rediscache implements a read-through/write-through cache client in
// front of a pluggable byte store and a caller-supplied synchronization
// function. A Get on a cached identity decodes and returns the stored value;
// a Get on an uncached identity computes the value through the synchronization
// function, persists it, and returns it, so the caller cannot tell a hit from
// a miss.
//
// Components:
//   - store.Store / store.HashStore: byte store with TTL (e.g. Redis,
//     Ristretto, BigCache) or a grouped container object (Redis hashes).
//   - codec.Codec[V]: (de)serializes V <-> []byte at the store boundary.
//   - SyncFunc[V] / AsyncSyncFunc[V]: the caller's authoritative data source,
//     blocking or channel-based; both unified behind one Get/Set contract.
//
// Keys:
//
//	<NAMESPACE>#<identity>            - scalar entries
//	<GROUPNS>#<groupID> field <NS>#<id> - container key and field key (hash mode)
//
// The client holds no locks and does not deduplicate concurrent misses: two
// concurrent Gets on the same uncached identity may each invoke the
// synchronization function and each issue a write; the last write wins.
// Expiry is delegated to the store's native TTL (scalar mode only).
package rediscache
