package cart

import "sync"

// Registry maps session keys to their cart stores. Carts are created on
// first access and live until Drop or process exit.
type Registry struct {
	mu     sync.Mutex
	stores map[string]*Store
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{stores: make(map[string]*Store)}
}

// Get returns the cart for the session key, creating it when absent.
func (r *Registry) Get(key string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.stores[key]
	if !ok {
		s = NewStore()
		r.stores[key] = s
	}
	return s
}

// Drop discards the cart for the session key.
func (r *Registry) Drop(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.stores, key)
}

// Len reports the number of live carts.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.stores)
}
