package asynchook

import (
	"sync"
	"testing"

	"github.com/nkanish2002/rediscache"
)

type recording struct {
	mu     sync.Mutex
	events []string
}

var _ rediscache.Hooks = (*recording)(nil)

func (r *recording) add(e string) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

func (r *recording) Hit(ns, id string)          { r.add("hit:" + ns + ":" + id) }
func (r *recording) Miss(ns, id string)         { r.add("miss:" + ns + ":" + id) }
func (r *recording) Computed(ns, id string)     { r.add("computed:" + ns + ":" + id) }
func (r *recording) GroupDeleted(gns, g string) { r.add("group:" + gns + ":" + g) }

func (r *recording) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

// All queued events are delivered before Close returns.
func TestDeliveryDrainsOnClose(t *testing.T) {
	rec := &recording{}
	h := New(rec, 2, 64)

	for i := 0; i < 20; i++ {
		h.Hit("student", "1")
	}
	h.Miss("student", "2")
	h.Computed("student", "2")
	h.GroupDeleted("class", "g")
	h.Close()

	if got := rec.count(); got != 23 {
		t.Fatalf("expected 23 delivered events, got %d", got)
	}
}

// A full queue drops events instead of blocking the caller.
func TestFullQueueDrops(t *testing.T) {
	block := make(chan struct{})
	slow := &blocking{release: block}
	h := New(slow, 1, 1)

	// First event occupies the worker, second fills the queue; the rest
	// must be dropped without blocking this goroutine.
	for i := 0; i < 10; i++ {
		h.Hit("ns1", "k")
	}
	close(block)
	h.Close()

	if got := slow.count(); got > 2 {
		t.Fatalf("expected at most 2 delivered events, got %d", got)
	}
}

type blocking struct {
	mu      sync.Mutex
	n       int
	release chan struct{}
}

var _ rediscache.Hooks = (*blocking)(nil)

func (b *blocking) rec() {
	<-b.release
	b.mu.Lock()
	b.n++
	b.mu.Unlock()
}

func (b *blocking) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.n
}

func (b *blocking) Hit(string, string)          { b.rec() }
func (b *blocking) Miss(string, string)         { b.rec() }
func (b *blocking) Computed(string, string)     { b.rec() }
func (b *blocking) GroupDeleted(string, string) { b.rec() }

// Close is idempotent.
func TestCloseTwice(t *testing.T) {
	h := New(rediscache.NopHooks{}, 1, 1)
	h.Close()
	h.Close()
}

// Events submitted after Close are dropped, not delivered and not a panic.
func TestSubmitAfterCloseDropped(t *testing.T) {
	rec := &recording{}
	h := New(rec, 1, 4)
	h.Hit("student", "1")
	h.Close()

	h.Hit("student", "2")
	h.Miss("student", "2")
	h.Computed("student", "2")
	h.GroupDeleted("class", "g")

	if got := rec.count(); got != 1 {
		t.Fatalf("expected only the pre-Close event, got %d", got)
	}
}
