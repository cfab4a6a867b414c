package rediscache

import (
	"context"
	"fmt"
	"time"

	cd "github.com/nkanish2002/rediscache/codec"
	"github.com/nkanish2002/rediscache/internal/keys"
	st "github.com/nkanish2002/rediscache/store"
)

type cache[V any] struct {
	ns    string
	store st.Store
	codec cd.Codec[V]
	inv   invoker[V]
	ttl   time.Duration
	log   Logger
	hooks Hooks
}

func newCache[V any](opts Options[V]) (*cache[V], error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("rediscache: store is required")
	}
	if opts.Codec == nil {
		return nil, fmt.Errorf("rediscache: codec is required")
	}
	if err := keys.ValidateNamespace(opts.Namespace); err != nil {
		return nil, fmt.Errorf("rediscache: %w", err)
	}
	inv, err := newInvoker[V](opts.Asynchronous, opts.SyncFunc, opts.AsyncSyncFunc)
	if err != nil {
		return nil, err
	}

	c := &cache[V]{
		ns:    opts.Namespace,
		store: opts.Store,
		codec: opts.Codec,
		inv:   inv,
		ttl:   opts.TTL,
	}
	c.log = coalesce[Logger](opts.Logger, NopLogger{})
	c.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	return c, nil
}

func (c *cache[V]) Get(ctx context.Context, identity string, extra ...any) (V, error) {
	var zero V
	k, err := keys.Compose(c.ns, identity)
	if err != nil {
		return zero, err
	}
	raw, ok, err := c.store.Get(ctx, k)
	if err != nil {
		return zero, err
	}
	if ok {
		c.hooks.Hit(c.ns, identity)
		v, err := c.codec.Decode(raw)
		if err != nil {
			// corrupt or incompatible stored bytes are a caller-visible
			// failure; no recompute, no repair
			return zero, err
		}
		return v, nil
	}
	c.hooks.Miss(c.ns, identity)
	return c.populate(ctx, k, identity, extra)
}

func (c *cache[V]) Set(ctx context.Context, identity string, extra ...any) (V, error) {
	var zero V
	k, err := keys.Compose(c.ns, identity)
	if err != nil {
		return zero, err
	}
	return c.populate(ctx, k, identity, extra)
}

func (c *cache[V]) SetValue(ctx context.Context, identity string, value V) (V, error) {
	var zero V
	k, err := keys.Compose(c.ns, identity)
	if err != nil {
		return zero, err
	}
	if err := c.write(ctx, k, value); err != nil {
		return zero, err
	}
	return value, nil
}

func (c *cache[V]) Delete(ctx context.Context, identity string) error {
	k, err := keys.Compose(c.ns, identity)
	if err != nil {
		return err
	}
	if err := c.store.Del(ctx, k); err != nil {
		return err
	}
	c.log.Debug("deleted entry", Fields{"key": k})
	return nil
}

// populate computes the value through the invoker and persists it. Exactly
// one invocation and one store write per call.
func (c *cache[V]) populate(ctx context.Context, k, identity string, extra []any) (V, error) {
	var zero V
	v, err := c.inv.Invoke(ctx, identity, extra)
	if err != nil {
		// no partial cache write: the store is only touched after a
		// successful computation
		return zero, err
	}
	if err := c.write(ctx, k, v); err != nil {
		return zero, err
	}
	c.hooks.Computed(c.ns, identity)
	return v, nil
}

func (c *cache[V]) write(ctx context.Context, k string, v V) error {
	raw, err := c.codec.Encode(v)
	if err != nil {
		return err
	}
	// Once computation has succeeded the write is not abandoned: it runs
	// detached from the caller's cancellation signal.
	if err := c.store.Set(context.WithoutCancel(ctx), k, raw, c.ttl); err != nil {
		return err
	}
	c.log.Debug("stored entry", Fields{"key": k, "ttl": c.ttl})
	return nil
}
