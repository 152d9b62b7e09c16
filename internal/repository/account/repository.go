package account

import (
	"context"

	"perfumebox/internal/domain"
)

// CreateInput carries the fields written for a new account.
type CreateInput struct {
	Phone    string
	FullName string
	Email    string
	Address  string
	City     string
}

// UpdateInput carries the profile fields refreshed at login or checkout.
type UpdateInput struct {
	FullName string
	Email    string
	Address  string
	City     string
}

// Repository persists recurring shopper accounts keyed by phone number.
type Repository interface {
	Create(ctx context.Context, in CreateInput) (*domain.Account, error)
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByPhone(ctx context.Context, phone string) (*domain.Account, error)
	Update(ctx context.Context, id string, in UpdateInput) (*domain.Account, error)
}
