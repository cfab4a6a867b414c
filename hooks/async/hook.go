// Package asynchook decouples Hooks consumers from the cache hot path: events
// are queued on a bounded channel and delivered by worker goroutines. When
// the queue is full, events are dropped rather than blocking the caller.
//
// usage:
//
//	hooks := asynchook.New(myHooks, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	cache, _ := rediscache.New[Student](rediscache.Options[Student]{
//	    Namespace: "student",
//	    Store:     store,
//	    Codec:     codec.JSON[Student]{},
//	    SyncFunc:  loadStudent,
//	    Hooks:     hooks, // or myHooks directly if async delivery is not wanted
//	})
package asynchook

import (
	"sync"
	"sync/atomic"

	"github.com/nkanish2002/rediscache"
)

type Hooks struct {
	inner  rediscache.Hooks
	q      chan func()
	wg     sync.WaitGroup
	once   sync.Once
	closed atomic.Bool
}

var _ rediscache.Hooks = (*Hooks)(nil)

func New(inner rediscache.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains the queue and stops the workers. Events submitted after Close
// are dropped.
func (h *Hooks) Close() {
	h.once.Do(func() {
		h.closed.Store(true)
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	if h.closed.Load() {
		return
	}
	// A submission racing Close can still hit the closed queue between the
	// flag check and the send; swallow that instead of crashing the caller.
	defer func() { _ = recover() }()
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) Hit(ns, id string)          { h.try(func() { h.inner.Hit(ns, id) }) }
func (h *Hooks) Miss(ns, id string)         { h.try(func() { h.inner.Miss(ns, id) }) }
func (h *Hooks) Computed(ns, id string)     { h.try(func() { h.inner.Computed(ns, id) }) }
func (h *Hooks) GroupDeleted(gns, g string) { h.try(func() { h.inner.GroupDeleted(gns, g) }) }
