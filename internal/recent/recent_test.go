package recent

import (
	"context"
	"fmt"
	"testing"
	"time"
)

type memList struct {
	lists map[string][]string
}

func newMemList() *memList {
	return &memList{lists: make(map[string][]string)}
}

func (m *memList) Range(_ context.Context, key string, stop int64) ([]string, error) {
	raw := m.lists[key]
	if stop >= 0 && int64(len(raw)) > stop+1 {
		raw = raw[:stop+1]
	}
	out := make([]string, len(raw))
	copy(out, raw)
	return out, nil
}

func (m *memList) Remove(_ context.Context, key, raw string) error {
	current := m.lists[key]
	for i, item := range current {
		if item == raw {
			m.lists[key] = append(current[:i], current[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *memList) Push(_ context.Context, key, raw string, max int64, _ time.Duration) error {
	updated := append([]string{raw}, m.lists[key]...)
	if int64(len(updated)) > max {
		updated = updated[:max]
	}
	m.lists[key] = updated
	return nil
}

func TestAddReturnsMostRecentFirst(t *testing.T) {
	s := NewStore(newMemList(), time.Hour)
	ctx := context.Background()

	for _, id := range []string{"p1", "p2", "p3"} {
		if err := s.Add(ctx, "viewer", Entry{ProductID: id, Title: id, Slug: id}); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}

	entries, err := s.List(ctx, "viewer")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for i, want := range []string{"p3", "p2", "p1"} {
		if entries[i].ProductID != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, entries[i].ProductID)
		}
	}
}

func TestAddMovesRepeatViewToFront(t *testing.T) {
	s := NewStore(newMemList(), time.Hour)
	ctx := context.Background()

	s.Add(ctx, "viewer", Entry{ProductID: "p1", Title: "Eros"})
	s.Add(ctx, "viewer", Entry{ProductID: "p2", Title: "Libre"})
	if err := s.Add(ctx, "viewer", Entry{ProductID: "p1", Title: "Eros EDT"}); err != nil {
		t.Fatalf("repeat add: %v", err)
	}

	entries, err := s.List(ctx, "viewer")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries after dedup, got %d", len(entries))
	}
	if entries[0].ProductID != "p1" || entries[0].Title != "Eros EDT" {
		t.Fatalf("repeat view should move to front with fresh data, got %+v", entries[0])
	}
	if entries[1].ProductID != "p2" {
		t.Fatalf("unexpected second entry %+v", entries[1])
	}
}

func TestAddTrimsToMaxEntries(t *testing.T) {
	s := NewStore(newMemList(), time.Hour)
	ctx := context.Background()

	for i := 0; i < MaxEntries+3; i++ {
		id := fmt.Sprintf("p%d", i)
		if err := s.Add(ctx, "viewer", Entry{ProductID: id, Title: id}); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}

	entries, err := s.List(ctx, "viewer")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != MaxEntries {
		t.Fatalf("expected %d entries, got %d", MaxEntries, len(entries))
	}
	if entries[0].ProductID != fmt.Sprintf("p%d", MaxEntries+2) {
		t.Fatalf("newest entry missing, got %+v", entries[0])
	}
	if entries[MaxEntries-1].ProductID != "p3" {
		t.Fatalf("oldest surviving entry should be p3, got %+v", entries[MaxEntries-1])
	}
}

func TestListSkipsUndecodableEntries(t *testing.T) {
	list := newMemList()
	s := NewStore(list, time.Hour)
	ctx := context.Background()

	s.Add(ctx, "viewer", Entry{ProductID: "p1", Title: "Eros"})
	list.lists["recent:viewer"] = append(list.lists["recent:viewer"], "{not json")

	entries, err := s.List(ctx, "viewer")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 || entries[0].ProductID != "p1" {
		t.Fatalf("expected only the valid entry, got %+v", entries)
	}
}

func TestListEmptyViewer(t *testing.T) {
	s := NewStore(newMemList(), time.Hour)
	entries, err := s.List(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
}
