package syncmap

import (
	"sort"
	"sync"
)

// Map is a thread-safe generic map keyed by string.
type Map[T any] struct {
	mux sync.RWMutex
	m   map[string]T
}

// New creates an empty Map.
func New[T any]() *Map[T] {
	return &Map[T]{
		m: make(map[string]T),
	}
}

// Get retrieves an item by name, returning the zero value when absent.
func (r *Map[T]) Get(name string) T {
	v, _ := r.Lookup(name)
	return v
}

// Lookup retrieves an item by name together with a presence flag.
func (r *Map[T]) Lookup(name string) (T, bool) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	if v, ok := r.m[name]; ok {
		return v, true
	}
	var zero T
	return zero, false
}

// Set adds or updates an item by name.
func (r *Map[T]) Set(name string, value T) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.m[name] = value
}

// Delete removes an item by name.
func (r *Map[T]) Delete(name string) {
	r.mux.Lock()
	defer r.mux.Unlock()
	delete(r.m, name)
}

// Keys returns all keys in lexical order for deterministic listings.
func (r *Map[T]) Keys() []string {
	r.mux.RLock()
	defer r.mux.RUnlock()
	keys := make([]string, 0, len(r.m))
	for k := range r.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// List returns a slice of all items.
func (r *Map[T]) List() []T {
	r.mux.RLock()
	defer r.mux.RUnlock()
	ret := make([]T, 0, len(r.m))
	for _, v := range r.m {
		ret = append(ret, v)
	}
	return ret
}

// Len returns the number of stored items.
func (r *Map[T]) Len() int {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return len(r.m)
}
