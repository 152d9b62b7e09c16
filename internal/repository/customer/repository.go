package customer

import (
	"context"

	"perfumebox/internal/domain"
)

// CreateInput is the point-in-time shipping contact written per order.
type CreateInput struct {
	FullName string
	Phone    string
	Email    string
	Address  string
}

// Repository persists shipping contact snapshots. Snapshots are insert-only:
// every order gets a fresh record even for repeat customers.
type Repository interface {
	Create(ctx context.Context, in CreateInput) (*domain.Customer, error)
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
}
