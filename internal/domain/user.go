package domain

import "time"

// Account is a recurring shopper identity keyed by phone number. One account
// accumulates many Customer shipping snapshots across orders.
type Account struct {
	ID        string    `json:"id"`
	Phone     string    `json:"phone"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	City      string    `json:"city,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Customer is a point-in-time shipping contact created for a single order.
// It is never reused as an address-book entry.
type Customer struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}
