package domain

import "time"

// Product is a catalog entry. Prices are whole BDT amounts; decant prices are
// zero when the size is not offered for the product.
type Product struct {
	ID              string    `json:"id"`
	Slug            string    `json:"slug"`
	Title           string    `json:"title"`
	Brand           string    `json:"brand"`
	Category        string    `json:"category"`
	Description     string    `json:"description,omitempty"`
	TopNotes        string    `json:"topNotes,omitempty"`
	HeartNotes      string    `json:"heartNotes,omitempty"`
	BaseNotes       string    `json:"baseNotes,omitempty"`
	Price           int64     `json:"price"`
	DiscountedPrice int64     `json:"discountedPrice,omitempty"`
	Price5ml        int64     `json:"price5ml,omitempty"`
	Price10ml       int64     `json:"price10ml,omitempty"`
	MainImageURL    string    `json:"mainImageUrl,omitempty"`
	Stock           int       `json:"stock"`
	IsVisible       bool      `json:"isVisible"`
	CreatedAt       time.Time `json:"createdAt"`
}

// EffectivePrice returns the discounted full-bottle price when one is set.
func (p Product) EffectivePrice() int64 {
	if p.DiscountedPrice > 0 {
		return p.DiscountedPrice
	}
	return p.Price
}

// VariantPrice returns the price for the given size, falling back to the
// effective full-bottle price for unknown or unpriced variants.
func (p Product) VariantPrice(v Variant) int64 {
	switch v {
	case Variant5ml:
		if p.Price5ml > 0 {
			return p.Price5ml
		}
	case Variant10ml:
		if p.Price10ml > 0 {
			return p.Price10ml
		}
	}
	return p.EffectivePrice()
}

// Purchasable reports whether the product can be added to a cart.
func (p Product) Purchasable() bool {
	return p.IsVisible && p.Stock > 0
}
