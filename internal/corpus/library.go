package corpus

import "sync"

// Library holds the current corpus snapshot and allows it to be swapped
// atomically, which is what makes hot-reload possible without restarting
// the process. Readers always see a complete, consistent snapshot.
type Library struct {
	mu   sync.RWMutex
	snap *Snapshot
}

// NewLibrary wraps an initial snapshot.
func NewLibrary(snap *Snapshot) *Library {
	if snap == nil {
		snap = NewSnapshot(nil, nil, nil, nil, nil, DefaultMatchThreshold)
	}
	return &Library{snap: snap}
}

// Snapshot returns the current snapshot. The returned value is immutable;
// hold on to it for the duration of one request to get a consistent view.
func (l *Library) Snapshot() *Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.snap
}

// Replace swaps in a freshly loaded snapshot.
func (l *Library) Replace(snap *Snapshot) {
	if snap == nil {
		return
	}
	l.mu.Lock()
	l.snap = snap
	l.mu.Unlock()
}
