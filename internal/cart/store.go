package cart

import (
	"sync"

	"perfumebox/internal/domain"
)

// Store holds the line items of a single shopper session. State lives only in
// memory; a restart empties every cart, matching the original reload
// behavior. Derived totals are recomputed on every read, never cached.
type Store struct {
	mu     sync.Mutex
	lines  []domain.LineItem
	opened bool
}

// NewStore returns an empty cart.
func NewStore() *Store {
	return &Store{}
}

// Add merges the item into the cart by (product id, variant), summing
// quantities, or appends a new entry. A non-positive quantity is treated as
// adding one unit. Adding marks the drawer surface open.
func (s *Store) Add(item domain.LineItem, qty int) {
	if qty <= 0 {
		qty = 1
	}
	item.Variant = item.Variant.Normalize()

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID == item.ProductID && s.lines[i].Variant == item.Variant {
			s.lines[i].Quantity += qty
			s.opened = true
			return
		}
	}
	item.Quantity = qty
	s.lines = append(s.lines, item)
	s.opened = true
}

// UpdateQuantity sets an entry's quantity exactly. A quantity of zero or less
// removes the entry. Unknown entries are a no-op.
func (s *Store) UpdateQuantity(productID string, variant domain.Variant, qty int) {
	variant = variant.Normalize()

	s.mu.Lock()
	defer s.mu.Unlock()

	if qty <= 0 {
		s.removeLocked(productID, variant)
		return
	}
	for i := range s.lines {
		if s.lines[i].ProductID == productID && s.lines[i].Variant == variant {
			s.lines[i].Quantity = qty
			return
		}
	}
}

// Remove deletes the entry if present.
func (s *Store) Remove(productID string, variant domain.Variant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(productID, variant.Normalize())
}

func (s *Store) removeLocked(productID string, variant domain.Variant) {
	for i := range s.lines {
		if s.lines[i].ProductID == productID && s.lines[i].Variant == variant {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. Safe to call on an already empty cart.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}

// Items returns a copy of the current entries in insertion order.
func (s *Store) Items() []domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.LineItem, len(s.lines))
	copy(out, s.lines)
	return out
}

// Subtotal is the sum of unit price times quantity over all entries.
func (s *Store) Subtotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, l := range s.lines {
		total += l.LineTotal()
	}
	return total
}

// ItemCount is the sum of quantities over all entries.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, l := range s.lines {
		count += l.Quantity
	}
	return count
}

// Open marks the cart drawer as shown.
func (s *Store) Open() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opened = true
}

// Close marks the cart drawer as hidden.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opened = false
}

// IsOpen reports whether the cart drawer is shown.
func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opened
}
