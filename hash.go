package rediscache

import (
	"context"
	"fmt"

	cd "github.com/nkanish2002/rediscache/codec"
	"github.com/nkanish2002/rediscache/internal/keys"
	st "github.com/nkanish2002/rediscache/store"
)

type hashCache[V any] struct {
	groupNS string
	ns      string
	store   st.HashStore
	codec   cd.Codec[V]
	inv     invoker[V]
	log     Logger
	hooks   Hooks
}

func newHashCache[V any](opts HashOptions[V]) (*hashCache[V], error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("rediscache: hash store is required")
	}
	if opts.Codec == nil {
		return nil, fmt.Errorf("rediscache: codec is required")
	}
	if err := keys.ValidateNamespace(opts.GroupNamespace); err != nil {
		return nil, fmt.Errorf("rediscache: group namespace: %w", err)
	}
	if err := keys.ValidateNamespace(opts.Namespace); err != nil {
		return nil, fmt.Errorf("rediscache: %w", err)
	}
	inv, err := newInvoker[V](opts.Asynchronous, opts.SyncFunc, opts.AsyncSyncFunc)
	if err != nil {
		return nil, err
	}

	h := &hashCache[V]{
		groupNS: opts.GroupNamespace,
		ns:      opts.Namespace,
		store:   opts.Store,
		codec:   opts.Codec,
		inv:     inv,
	}
	h.log = coalesce[Logger](opts.Logger, NopLogger{})
	h.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	return h, nil
}

func (h *hashCache[V]) Get(ctx context.Context, groupID, identity string, extra ...any) (V, error) {
	var zero V
	ck, fk, err := h.compose(groupID, identity)
	if err != nil {
		return zero, err
	}
	raw, ok, err := h.store.HGet(ctx, ck, fk)
	if err != nil {
		return zero, err
	}
	if ok {
		h.hooks.Hit(h.ns, identity)
		v, err := h.codec.Decode(raw)
		if err != nil {
			return zero, err
		}
		return v, nil
	}
	h.hooks.Miss(h.ns, identity)
	return h.populate(ctx, ck, fk, identity, extra)
}

func (h *hashCache[V]) Set(ctx context.Context, groupID, identity string, extra ...any) (V, error) {
	var zero V
	ck, fk, err := h.compose(groupID, identity)
	if err != nil {
		return zero, err
	}
	return h.populate(ctx, ck, fk, identity, extra)
}

func (h *hashCache[V]) SetValue(ctx context.Context, groupID, identity string, value V) (V, error) {
	var zero V
	ck, fk, err := h.compose(groupID, identity)
	if err != nil {
		return zero, err
	}
	if err := h.write(ctx, ck, fk, value); err != nil {
		return zero, err
	}
	return value, nil
}

func (h *hashCache[V]) Delete(ctx context.Context, groupID, identity string) error {
	ck, fk, err := h.compose(groupID, identity)
	if err != nil {
		return err
	}
	if err := h.store.HDel(ctx, ck, fk); err != nil {
		return err
	}
	h.log.Debug("deleted field", Fields{"container": ck, "field": fk})
	return nil
}

func (h *hashCache[V]) DeleteGroup(ctx context.Context, groupID string) error {
	ck, err := keys.Compose(h.groupNS, groupID)
	if err != nil {
		return err
	}
	if err := h.store.Del(ctx, ck); err != nil {
		return err
	}
	h.hooks.GroupDeleted(h.groupNS, groupID)
	h.log.Debug("deleted container", Fields{"container": ck})
	return nil
}

// compose derives the (container key, field key) pair. Both components fail
// fast on malformed input before any store call.
func (h *hashCache[V]) compose(groupID, identity string) (string, string, error) {
	ck, err := keys.Compose(h.groupNS, groupID)
	if err != nil {
		return "", "", err
	}
	fk, err := keys.Compose(h.ns, identity)
	if err != nil {
		return "", "", err
	}
	return ck, fk, nil
}

func (h *hashCache[V]) populate(ctx context.Context, ck, fk, identity string, extra []any) (V, error) {
	var zero V
	v, err := h.inv.Invoke(ctx, identity, extra)
	if err != nil {
		return zero, err
	}
	if err := h.write(ctx, ck, fk, v); err != nil {
		return zero, err
	}
	h.hooks.Computed(h.ns, identity)
	return v, nil
}

func (h *hashCache[V]) write(ctx context.Context, ck, fk string, v V) error {
	raw, err := h.codec.Encode(v)
	if err != nil {
		return err
	}
	// same write-completion policy as the scalar client
	if err := h.store.HSet(context.WithoutCancel(ctx), ck, fk, raw); err != nil {
		return err
	}
	h.log.Debug("stored field", Fields{"container": ck, "field": fk})
	return nil
}
