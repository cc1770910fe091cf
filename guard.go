package panes

import "sync"

// guard is the session's exclusive-access discipline. It never blocks: an
// acquisition that would wait fails with ErrLocked, which turns a reentrant
// call (a host callback mutating the session from inside an update) into an
// error instead of a deadlock.
type guard struct {
	mu sync.RWMutex
}

// lock takes exclusive access for a mutation.
func (g *guard) lock() error {
	if !g.mu.TryLock() {
		return ErrLocked
	}
	return nil
}

func (g *guard) unlock() {
	g.mu.Unlock()
}

// rlock takes shared access for a query. Queries may overlap each other but
// never a mutation.
func (g *guard) rlock() error {
	if !g.mu.TryRLock() {
		return ErrLocked
	}
	return nil
}

func (g *guard) runlock() {
	g.mu.RUnlock()
}
