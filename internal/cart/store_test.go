package cart

import (
	"testing"

	"perfumebox/internal/domain"
)

func TestStoreAddMergesByProductAndVariant(t *testing.T) {
	s := NewStore()
	s.Add(domain.LineItem{ProductID: "p1", Variant: domain.VariantFull, UnitPrice: 1000}, 2)
	s.Add(domain.LineItem{ProductID: "p1", Variant: domain.VariantFull, UnitPrice: 1000}, 3)

	items := s.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(items))
	}
	if items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", items[0].Quantity)
	}
}

func TestStoreAddKeepsVariantsDistinct(t *testing.T) {
	s := NewStore()
	s.Add(domain.LineItem{ProductID: "p1", Variant: domain.VariantFull, UnitPrice: 9500}, 1)
	s.Add(domain.LineItem{ProductID: "p1", Variant: domain.Variant5ml, UnitPrice: 650}, 1)

	if len(s.Items()) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(s.Items()))
	}
}

func TestStoreAddNonPositiveQuantityAddsOne(t *testing.T) {
	s := NewStore()
	s.Add(domain.LineItem{ProductID: "p1", UnitPrice: 100}, 0)
	s.Add(domain.LineItem{ProductID: "p2", UnitPrice: 100}, -3)

	for _, item := range s.Items() {
		if item.Quantity != 1 {
			t.Fatalf("expected quantity 1 for %s, got %d", item.ProductID, item.Quantity)
		}
	}
}

func TestStoreAddOpensDrawer(t *testing.T) {
	s := NewStore()
	if s.IsOpen() {
		t.Fatalf("new cart should not be open")
	}
	s.Add(domain.LineItem{ProductID: "p1", UnitPrice: 100}, 1)
	if !s.IsOpen() {
		t.Fatalf("adding should open the drawer")
	}
	s.Close()
	if s.IsOpen() {
		t.Fatalf("close should hide the drawer")
	}
}

func TestStoreUpdateQuantitySetsExactly(t *testing.T) {
	s := NewStore()
	s.Add(domain.LineItem{ProductID: "p1", UnitPrice: 100}, 2)
	s.UpdateQuantity("p1", domain.VariantFull, 7)

	items := s.Items()
	if items[0].Quantity != 7 {
		t.Fatalf("expected quantity 7, got %d", items[0].Quantity)
	}
}

func TestStoreUpdateQuantityZeroRemoves(t *testing.T) {
	s := NewStore()
	s.Add(domain.LineItem{ProductID: "p1", UnitPrice: 100}, 3)
	s.UpdateQuantity("p1", domain.VariantFull, 0)

	if len(s.Items()) != 0 {
		t.Fatalf("expected empty cart, got %d entries", len(s.Items()))
	}
}

func TestStoreRemoveUnknownIsNoop(t *testing.T) {
	s := NewStore()
	s.Add(domain.LineItem{ProductID: "p1", UnitPrice: 100}, 1)
	s.Remove("missing", domain.VariantFull)

	if len(s.Items()) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(s.Items()))
	}
}

func TestStoreDerivedTotals(t *testing.T) {
	s := NewStore()
	s.Add(domain.LineItem{ProductID: "p1", UnitPrice: 1000}, 2)
	s.Add(domain.LineItem{ProductID: "p2", UnitPrice: 650}, 3)

	if got := s.Subtotal(); got != 2*1000+3*650 {
		t.Fatalf("unexpected subtotal %d", got)
	}
	if got := s.ItemCount(); got != 5 {
		t.Fatalf("unexpected item count %d", got)
	}

	s.UpdateQuantity("p2", domain.VariantFull, 1)
	if got := s.Subtotal(); got != 2*1000+650 {
		t.Fatalf("subtotal not recomputed, got %d", got)
	}
}

func TestStoreClearIsIdempotent(t *testing.T) {
	s := NewStore()
	s.Add(domain.LineItem{ProductID: "p1", UnitPrice: 100}, 2)
	s.Clear()
	s.Clear()

	if len(s.Items()) != 0 || s.Subtotal() != 0 || s.ItemCount() != 0 {
		t.Fatalf("cart not empty after clear")
	}
}

func TestStoreEmptyVariantIsFullBottle(t *testing.T) {
	s := NewStore()
	s.Add(domain.LineItem{ProductID: "p1", Variant: "", UnitPrice: 100}, 1)
	s.Add(domain.LineItem{ProductID: "p1", Variant: domain.VariantFull, UnitPrice: 100}, 1)

	items := s.Items()
	if len(items) != 1 || items[0].Quantity != 2 {
		t.Fatalf("empty variant should merge with full, got %+v", items)
	}
}

func TestRegistryGetCreatesPerKey(t *testing.T) {
	r := NewRegistry()
	a := r.Get("session-a")
	b := r.Get("session-b")
	if a == b {
		t.Fatalf("expected distinct carts per session")
	}
	if r.Get("session-a") != a {
		t.Fatalf("expected the same cart on repeat access")
	}

	r.Drop("session-a")
	if r.Len() != 1 {
		t.Fatalf("expected 1 live cart, got %d", r.Len())
	}
}
