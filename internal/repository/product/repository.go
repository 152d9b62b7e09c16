package product

import (
	"context"

	"perfumebox/internal/domain"
)

// Repository reads the perfume catalog. Listing only returns visible
// products; direct lookups return hidden ones so admin tooling can reuse
// them.
type Repository interface {
	List(ctx context.Context, category string) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)
}
