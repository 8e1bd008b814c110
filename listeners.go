package relay

import (
	"slices"
	"sync"
)

// listenerKey identifies one registration within an event's list. ptr is the
// code pointer of the registered function; seq is zero for plain
// registrations and a unique sequence number for fire-once adapters, so each
// once-registration keeps its own identity even though every adapter shares
// one function body.
type listenerKey struct {
	ptr uintptr
	seq uint64
}

type listenerEntry struct {
	key listenerKey
	fn  Listener
}

// listenerList is the ordered set of registrations for one event name. The
// mutex guards the slice only; it is never held while a listener runs, so
// listeners are free to mutate the registry mid-emission.
type listenerList struct {
	mu      sync.Mutex
	entries []listenerEntry
}

// add appends the entry unless its key is already present. Reports whether
// the entry was actually added.
func (l *listenerList) add(e listenerEntry) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, existing := range l.entries {
		if existing.key == e.key {
			return false
		}
	}
	l.entries = append(l.entries, e)
	return true
}

// remove splices out the entry with the given key, preserving the order of
// the survivors. Returns the removed listener and whether a removal occurred.
func (l *listenerList) remove(key listenerKey) (Listener, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := slices.IndexFunc(l.entries, func(e listenerEntry) bool { return e.key == key })
	if idx < 0 {
		return nil, false
	}
	fn := l.entries[idx].fn
	l.entries = slices.Delete(l.entries, idx, idx+1)
	return fn, true
}

// snapshot copies the current entries. Emission iterates the copy, which is
// what makes mid-round registry mutations safe: removed listeners still fire
// this round, added listeners wait for the next one.
func (l *listenerList) snapshot() []listenerEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.entries)
}

// keys returns the identity keys in registration order.
func (l *listenerList) keys() []listenerKey {
	l.mu.Lock()
	defer l.mu.Unlock()

	keys := make([]listenerKey, len(l.entries))
	for i, e := range l.entries {
		keys[i] = e.key
	}
	return keys
}

func (l *listenerList) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
