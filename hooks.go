package rediscache

// Hooks are lightweight callbacks for cache events. Implementations MUST be
// cheap and non-blocking; the clients call them on hot paths. Wrap with
// hooks/async to decouple slow consumers.
type Hooks interface {
	// Hit: a Get found the identity in the store.
	Hit(namespace, identity string)

	// Miss: a Get did not find the identity and is about to compute.
	Miss(namespace, identity string)

	// Computed: the synchronization function returned successfully and the
	// store write was issued.
	Computed(namespace, identity string)

	// GroupDeleted: a whole container object was removed (hash mode).
	GroupDeleted(groupNamespace, groupID string)
}

// NopHooks is the default no-op.
type NopHooks struct{}

func (NopHooks) Hit(string, string)          {}
func (NopHooks) Miss(string, string)         {}
func (NopHooks) Computed(string, string)     {}
func (NopHooks) GroupDeleted(string, string) {}
