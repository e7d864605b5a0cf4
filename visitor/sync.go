package visitor

import "sync"

// SyncMap is a thread-safe map, it caches per type metadata
type SyncMap[K comparable, V any] struct {
	m   map[K]V
	mux sync.RWMutex
}

// Get returns a value from the map
func (m *SyncMap[K, V]) Get(k K) (V, bool) {
	m.mux.RLock()
	defer m.mux.RUnlock()
	v, ok := m.m[k]
	return v, ok
}

// Put adds a value to the map
func (m *SyncMap[K, V]) Put(k K, v V) {
	m.mux.Lock()
	defer m.mux.Unlock()
	m.m[k] = v
}

// GetOrCreate returns cached value or puts the one created by fn.
// fn runs outside of the lock, concurrent callers may each create a value and the last one is kept.
func (m *SyncMap[K, V]) GetOrCreate(k K, fn func() V) V {
	if v, ok := m.Get(k); ok {
		return v
	}
	v := fn()
	m.Put(k, v)
	return v
}

// Len returns number of entries
func (m *SyncMap[K, V]) Len() int {
	m.mux.RLock()
	defer m.mux.RUnlock()
	return len(m.m)
}

// NewSyncMap creates a SyncMap
func NewSyncMap[K comparable, V any]() *SyncMap[K, V] {
	return &SyncMap[K, V]{m: make(map[K]V)}
}
