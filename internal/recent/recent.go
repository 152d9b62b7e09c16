package recent

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// MaxEntries bounds the recently-viewed list per viewer.
const MaxEntries = 12

const keyPrefix = "recent:"

// Entry is one recently-viewed product.
type Entry struct {
	ProductID string `json:"productId"`
	Title     string `json:"title"`
	Brand     string `json:"brand,omitempty"`
	Price     int64  `json:"price"`
	ImageURL  string `json:"imageUrl,omitempty"`
	Slug      string `json:"slug"`
}

// ListStore persists raw entries as a front-inserted, bounded list per key.
type ListStore interface {
	Range(ctx context.Context, key string, stop int64) ([]string, error)
	Remove(ctx context.Context, key, raw string) error
	Push(ctx context.Context, key, raw string, max int64, ttl time.Duration) error
}

// Store keeps a bounded most-recent-first product list per viewer.
// Entries are deduplicated by product id: viewing a product again moves it
// to the front instead of adding a second copy.
type Store struct {
	list ListStore
	ttl  time.Duration
}

// NewStore returns a Store. Lists expire after ttl of inactivity.
func NewStore(list ListStore, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &Store{list: list, ttl: ttl}
}

// Add records a view: deduplicated by product id, pushed to the front,
// trimmed to MaxEntries.
func (s *Store) Add(ctx context.Context, viewerID string, e Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}
	key := keyPrefix + viewerID

	current, err := s.list.Range(ctx, key, -1)
	if err != nil {
		return err
	}
	for _, raw := range current {
		var existing Entry
		if json.Unmarshal([]byte(raw), &existing) == nil && existing.ProductID == e.ProductID {
			if err := s.list.Remove(ctx, key, raw); err != nil {
				return err
			}
		}
	}

	return s.list.Push(ctx, key, string(data), MaxEntries, s.ttl)
}

// List returns the viewer's entries, most recent first. Entries that no
// longer decode are skipped.
func (s *Store) List(ctx context.Context, viewerID string) ([]Entry, error) {
	raw, err := s.list.Range(ctx, keyPrefix+viewerID, MaxEntries-1)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(raw))
	for _, item := range raw {
		var e Entry
		if err := json.Unmarshal([]byte(item), &e); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}
