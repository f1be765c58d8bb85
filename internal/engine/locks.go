package engine

import "sync"

// sessionLocks serializes the read-modify-write cycle per session id while
// leaving distinct sessions fully independent. Entries are reference-counted
// so the map does not grow with every session ever seen.
type sessionLocks struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{locks: make(map[string]*lockEntry)}
}

func (l *sessionLocks) lock(id string) {
	l.mu.Lock()
	e, ok := l.locks[id]
	if !ok {
		e = &lockEntry{}
		l.locks[id] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()
}

func (l *sessionLocks) unlock(id string) {
	l.mu.Lock()
	e := l.locks[id]
	e.refs--
	if e.refs == 0 {
		delete(l.locks, id)
	}
	l.mu.Unlock()

	e.mu.Unlock()
}
