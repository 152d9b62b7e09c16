package order

import (
	"context"

	"perfumebox/internal/domain"
)

// CreateInput carries the order header written at checkout.
type CreateInput struct {
	CustomerID    string
	AccountID     string
	TotalAmount   int64
	ShippingFee   int64
	Discount      int64
	PaymentMethod string
	TrxID         *string
}

// ItemInput is one purchased line. UnitPrice is the price at purchase time.
type ItemInput struct {
	ProductID string
	Variant   domain.Variant
	Quantity  int
	UnitPrice int64
}

// Repository persists orders and their line items. Header and items are
// separate writes; the checkout orchestrator owns the sequencing and its
// partial-failure semantics.
type Repository interface {
	Create(ctx context.Context, in CreateInput) (*domain.Order, error)
	AddItems(ctx context.Context, orderID string, items []ItemInput) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByAccount(ctx context.Context, accountID string) ([]domain.Order, error)
}
