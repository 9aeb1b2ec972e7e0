package recording

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// BackendFactory creates a new backend instance.
type BackendFactory func() Backend

// registry maps backend names to factories.
type registry struct {
	mu        sync.RWMutex
	factories map[string]BackendFactory
}

var backends = &registry{factories: make(map[string]BackendFactory)}

// Register makes a backend available under name. It is meant to be called
// from init in backend packages.
//
// Register panics if factory is nil or name is already registered.
func Register(name string, factory BackendFactory) {
	if factory == nil {
		panic("recording: Register factory is nil")
	}
	backends.mu.Lock()
	defer backends.mu.Unlock()
	if _, dup := backends.factories[name]; dup {
		panic("recording: Register called twice for " + name)
	}
	backends.factories[name] = factory
}

// Unregister removes a backend. It is a no-op for unknown names.
func Unregister(name string) {
	backends.mu.Lock()
	defer backends.mu.Unlock()
	delete(backends.factories, name)
}

// NewBackend creates a backend by name.
func NewBackend(name string) (Backend, error) {
	backends.mu.RLock()
	factory, ok := backends.factories[name]
	backends.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("recording: unknown backend %q (forgotten import?)", name)
	}
	return factory(), nil
}

// Backends returns the registered backend names in sorted order.
func Backends() []string {
	backends.mu.RLock()
	defer backends.mu.RUnlock()
	return slices.Sorted(maps.Keys(backends.factories))
}

// IsRegistered reports whether a backend is registered under name.
func IsRegistered(name string) bool {
	backends.mu.RLock()
	defer backends.mu.RUnlock()
	_, ok := backends.factories[name]
	return ok
}
