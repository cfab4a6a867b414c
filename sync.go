package rediscache

import (
	"context"
	"errors"
)

// SyncFunc produces the authoritative value for an identity, blocking until
// the result is available. The identity is forwarded by convention; extra
// arguments are passed through verbatim and never participate in key
// composition.
type SyncFunc[V any] func(ctx context.Context, identity string, extra ...any) (V, error)

// AsyncSyncFunc starts the computation and returns a channel delivering
// exactly one Result. Implementations typically hand the work to the
// application's own worker/task machinery and close the channel after the
// single send.
type AsyncSyncFunc[V any] func(ctx context.Context, identity string, extra ...any) <-chan Result[V]

// Result carries the outcome of an asynchronous synchronization function.
type Result[V any] struct {
	Value V
	Err   error
}

// ErrNoResult is returned when an AsyncSyncFunc closes its result channel
// without delivering a Result.
var ErrNoResult = errors.New("rediscache: synchronization function delivered no result")

// AsAsync adapts a blocking SyncFunc to the asynchronous convention by
// running it in its own goroutine.
func AsAsync[V any](fn SyncFunc[V]) AsyncSyncFunc[V] {
	return func(ctx context.Context, identity string, extra ...any) <-chan Result[V] {
		ch := make(chan Result[V], 1)
		go func() {
			defer close(ch)
			v, err := fn(ctx, identity, extra...)
			ch <- Result[V]{Value: v, Err: err}
		}()
		return ch
	}
}

// invoker unifies the two synchronization-function shapes behind one call.
// The concrete implementation is fixed at construction by the Asynchronous
// flag. It is a pure pass-through of control: no retries, no timeouts.
type invoker[V any] interface {
	Invoke(ctx context.Context, identity string, extra []any) (V, error)
}

type directInvoker[V any] struct {
	fn SyncFunc[V]
}

func (d directInvoker[V]) Invoke(ctx context.Context, identity string, extra []any) (V, error) {
	return d.fn(ctx, identity, extra...)
}

type taskInvoker[V any] struct {
	fn AsyncSyncFunc[V]
}

func (t taskInvoker[V]) Invoke(ctx context.Context, identity string, extra []any) (V, error) {
	var zero V
	ch := t.fn(ctx, identity, extra...)
	select {
	case r, ok := <-ch:
		if !ok {
			return zero, ErrNoResult
		}
		return r.Value, r.Err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// newInvoker validates that exactly the function matching the mode is set.
func newInvoker[V any](asynchronous bool, sync SyncFunc[V], async AsyncSyncFunc[V]) (invoker[V], error) {
	if asynchronous {
		if async == nil {
			return nil, errors.New("rediscache: Asynchronous is set but AsyncSyncFunc is nil")
		}
		return taskInvoker[V]{fn: async}, nil
	}
	if sync == nil {
		return nil, errors.New("rediscache: SyncFunc is required")
	}
	return directInvoker[V]{fn: sync}, nil
}
