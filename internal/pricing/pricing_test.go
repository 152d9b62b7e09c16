package pricing

import "testing"

func TestShippingFeeByZone(t *testing.T) {
	p := Default()
	if got := p.ShippingFee(2000, ZoneInside); got != 100 {
		t.Fatalf("inside fee: expected 100, got %d", got)
	}
	if got := p.ShippingFee(2000, ZoneOutside); got != 150 {
		t.Fatalf("outside fee: expected 150, got %d", got)
	}
}

func TestShippingFeeFreeThresholdOverridesZone(t *testing.T) {
	p := Default()
	for _, zone := range []Zone{ZoneInside, ZoneOutside} {
		if got := p.ShippingFee(20000, zone); got != 0 {
			t.Fatalf("zone %s: expected free shipping at threshold, got %d", zone, got)
		}
		if got := p.ShippingFee(25000, zone); got != 0 {
			t.Fatalf("zone %s: expected free shipping above threshold, got %d", zone, got)
		}
	}
	if got := p.ShippingFee(19999, ZoneInside); got != 100 {
		t.Fatalf("just below threshold: expected 100, got %d", got)
	}
}

func TestDiscountCaseInsensitiveMatch(t *testing.T) {
	p := Default()
	for _, code := range []string{"perfume10", "PERFUME10", "Perfume10", "  perfume10 "} {
		if got := p.Discount(code); got != 10 {
			t.Fatalf("code %q: expected 10, got %d", code, got)
		}
	}
	for _, code := range []string{"", "perfume20", "perfume1"} {
		if got := p.Discount(code); got != 0 {
			t.Fatalf("code %q: expected 0, got %d", code, got)
		}
	}
}

func TestGrandTotalIdentity(t *testing.T) {
	if got := GrandTotal(2000, 100, 0); got != 2100 {
		t.Fatalf("expected 2100, got %d", got)
	}
	if got := GrandTotal(2000, 100, 10); got != 2090 {
		t.Fatalf("expected 2090, got %d", got)
	}
}

func TestGrandTotalClampedAtZero(t *testing.T) {
	if got := GrandTotal(5, 0, 10); got != 0 {
		t.Fatalf("expected clamp to 0, got %d", got)
	}
}

// Scenario: two units at 1000 inside the metro area, no voucher.
func TestCheckoutScenarioInsideNoVoucher(t *testing.T) {
	p := Default()
	subtotal := int64(2 * 1000)
	fee := p.ShippingFee(subtotal, ZoneInside)
	discount := p.Discount("")
	if fee != 100 || discount != 0 {
		t.Fatalf("unexpected fee=%d discount=%d", fee, discount)
	}
	if got := GrandTotal(subtotal, fee, discount); got != 2100 {
		t.Fatalf("expected 2100, got %d", got)
	}
}

// Scenario: quantity raised until the subtotal crosses the free threshold.
func TestCheckoutScenarioFreeShipping(t *testing.T) {
	p := Default()
	subtotal := int64(20 * 1000)
	for _, zone := range []Zone{ZoneInside, ZoneOutside} {
		if fee := p.ShippingFee(subtotal, zone); fee != 0 {
			t.Fatalf("zone %s: expected free shipping, got %d", zone, fee)
		}
	}
	if got := GrandTotal(subtotal, 0, 0); got != 20000 {
		t.Fatalf("expected 20000, got %d", got)
	}
}
