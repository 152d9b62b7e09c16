package pricing

import "strings"

// Zone is the shipping cost tier for a destination.
type Zone string

const (
	ZoneInside  Zone = "inside"
	ZoneOutside Zone = "outside"
)

// Valid reports whether z is a known zone.
func (z Zone) Valid() bool {
	return z == ZoneInside || z == ZoneOutside
}

// Policy holds the shipping and voucher constants applied at checkout.
// Amounts are whole BDT.
type Policy struct {
	InsideFee         int64
	OutsideFee        int64
	FreeShipThreshold int64
	VoucherCode       string
	VoucherDiscount   int64
}

// Default returns the canonical storefront policy: 100 inside / 150 outside
// metro delivery, free shipping from 20000, and the single flat voucher.
func Default() Policy {
	return Policy{
		InsideFee:         100,
		OutsideFee:        150,
		FreeShipThreshold: 20000,
		VoucherCode:       "perfume10",
		VoucherDiscount:   10,
	}
}

// ShippingFee returns the fee for the zone, forced to zero once the subtotal
// reaches the free-shipping threshold regardless of zone.
func (p Policy) ShippingFee(subtotal int64, zone Zone) int64 {
	if subtotal >= p.FreeShipThreshold {
		return 0
	}
	if zone == ZoneOutside {
		return p.OutsideFee
	}
	return p.InsideFee
}

// Discount returns the flat voucher amount on a case-insensitive code match,
// zero otherwise.
func (p Policy) Discount(code string) int64 {
	if strings.EqualFold(strings.TrimSpace(code), p.VoucherCode) {
		return p.VoucherDiscount
	}
	return 0
}

// GrandTotal is subtotal plus shipping minus discount, clamped at zero so a
// discount can never drive the total negative.
func GrandTotal(subtotal, shippingFee, discount int64) int64 {
	total := subtotal + shippingFee - discount
	if total < 0 {
		return 0
	}
	return total
}
