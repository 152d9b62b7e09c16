package domain

// Variant identifies the purchasable size of a product. Decants are partial
// volumes sold at their own price point; cart identity is the explicit
// (product id, variant) pair rather than a suffix-encoded string.
type Variant string

const (
	VariantFull Variant = "full"
	Variant5ml  Variant = "5ml"
	Variant10ml Variant = "10ml"
)

// Valid reports whether v is a known variant. The empty variant is read as
// the full bottle.
func (v Variant) Valid() bool {
	switch v {
	case VariantFull, Variant5ml, Variant10ml, "":
		return true
	}
	return false
}

// Normalize maps the empty variant to the full bottle.
func (v Variant) Normalize() Variant {
	if v == "" {
		return VariantFull
	}
	return v
}

// CartTitle returns the title shown for a cart line of this variant.
func (v Variant) CartTitle(title string) string {
	switch v {
	case Variant5ml, Variant10ml:
		return title + " (" + string(v) + " Decant)"
	}
	return title
}

// LineItem is one cart entry. UnitPrice is captured when the item is added
// and does not follow later catalog price changes.
type LineItem struct {
	ProductID string  `json:"productId"`
	Variant   Variant `json:"variant"`
	Title     string  `json:"title"`
	UnitPrice int64   `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
	ImageURL  string  `json:"imageUrl,omitempty"`
}

// LineTotal is the extended price of the entry.
func (l LineItem) LineTotal() int64 {
	return l.UnitPrice * int64(l.Quantity)
}
