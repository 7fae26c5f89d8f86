package sout

import (
	"sync"
	"sync/atomic"

	"github.com/petermattis/goid"
)

// ReentrantMutex is a mutual exclusion lock that the holding goroutine may
// acquire again without deadlocking. It is released only once the recursion
// depth unwinds to zero. The zero value is an unlocked mutex.
//
// Re-entrancy exists so that a print operation may itself trigger another
// print against the same config (e.g. a formatting callback that emits
// output) while the lock is already held.
type ReentrantMutex struct {
	mu    sync.Mutex
	owner atomic.Int64 // goroutine ID of the current holder, 0 when free
	depth int          // recursion depth, only ever touched by the owner
}

// Lock acquires the mutex, blocking until it is available. A goroutine that
// already holds the lock re-acquires it immediately.
func (m *ReentrantMutex) Lock() {
	gid := goid.Get()
	// Goroutine IDs start at 1, so 0 can never match a live goroutine.
	if m.owner.Load() == gid {
		m.depth++
		return
	}
	m.mu.Lock()
	m.owner.Store(gid)
	m.depth = 1
}

// Unlock releases one level of acquisition. The underlying mutex is freed
// only when the outermost Lock is undone. Unlocking a mutex not held by the
// calling goroutine panics, matching sync.Mutex misuse behavior.
func (m *ReentrantMutex) Unlock() {
	if m.owner.Load() != goid.Get() {
		panic("sout: Unlock of ReentrantMutex not held by this goroutine")
	}
	m.depth--
	if m.depth == 0 {
		// Clear ownership before releasing so a racing Lock never observes
		// a stale owner while the mutex is free.
		m.owner.Store(0)
		m.mu.Unlock()
	}
}
