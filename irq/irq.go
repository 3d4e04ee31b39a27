// Package irq models a maskable edge-triggered interrupt line.
//
// Edges raised while the line is masked are dropped, not queued, matching a
// pin-change interrupt whose flag is never read back.
package irq

import (
	"sync"
	"sync/atomic"
)

// Line delivers edges to a handler one at a time.
type Line[E any] struct {
	mu      sync.Mutex
	handler func(E)
	masked  atomic.Bool
	dropped atomic.Uint64
}

// NewLine returns an enabled Line calling handler for every accepted edge.
func NewLine[E any](handler func(E)) *Line[E] {
	return &Line[E]{handler: handler}
}

// Raise delivers e to the handler unless the line is masked. It blocks while
// another edge or an Exclusive section is running and reports whether the
// edge was delivered.
func (l *Line[E]) Raise(e E) bool {
	if l.masked.Load() {
		l.dropped.Add(1)
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	// masked while waiting for the lock
	if l.masked.Load() {
		l.dropped.Add(1)
		return false
	}
	l.handler(e)
	return true
}

// Disable masks the line. It may be called from inside the handler.
func (l *Line[E]) Disable() { l.masked.Store(true) }

// Enable unmasks the line. It may be called from inside the handler.
func (l *Line[E]) Enable() { l.masked.Store(false) }

func (l *Line[E]) Enabled() bool { return !l.masked.Load() }

// Dropped returns how many edges arrived while the line was masked.
func (l *Line[E]) Dropped() uint64 { return l.dropped.Load() }

// Exclusive runs fn with the line masked and no handler in flight, the way
// mainline code masks the interrupt around work that shares state with it.
// Edges raised meanwhile are dropped. It must not be called from the handler.
func (l *Line[E]) Exclusive(fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	prev := l.masked.Swap(true)
	defer l.masked.Store(prev)
	fn()
}
