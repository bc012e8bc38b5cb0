// Package handles maps Go values to integer ids that can be stored in FMOD
// user data and handed back to Go from a native callback.
//
// FMOD lets every Channel carry one void* of user data. Go pointers must not
// live in native memory, so the channel callback table stores an id from
// Register there instead and resolves it with Load when the trampoline runs.
package handles

import (
	"sync"
)

var (
	mu      sync.RWMutex
	entries = make(map[uintptr]any)
	nextID  uintptr = 1
)

// Register stores v and returns a non-zero id for it. v stays reachable
// until Unregister is called with that id.
//
// Thread-safe.
func Register(v any) uintptr {
	mu.Lock()
	defer mu.Unlock()
	id := nextID
	nextID++
	entries[id] = v
	return id
}

// Lookup returns the value registered under id, or nil.
//
// Thread-safe.
func Lookup(id uintptr) any {
	mu.RLock()
	defer mu.RUnlock()
	return entries[id]
}

// Load returns the value registered under id if it has type T.
//
// Thread-safe.
func Load[T any](id uintptr) (T, bool) {
	v, ok := Lookup(id).(T)
	return v, ok
}

// Unregister forgets id. Unknown ids are ignored.
//
// Thread-safe.
func Unregister(id uintptr) {
	mu.Lock()
	defer mu.Unlock()
	delete(entries, id)
}

// Count returns the number of registered values, for leak checks in tests.
//
// Thread-safe.
func Count() int {
	mu.RLock()
	defer mu.RUnlock()
	return len(entries)
}
