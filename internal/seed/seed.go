package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type productSeed struct {
	Slug            string
	Title           string
	Brand           string
	Category        string
	Description     string
	Price           int64
	DiscountedPrice int64
	Price5ml        int64
	Price10ml       int64
	Stock           int
}

// Apply inserts basic seed data for manual testing. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	products := []productSeed{
		{
			Slug:        "versace-eros-edt",
			Title:       "Versace Eros EDT",
			Brand:       "Versace",
			Category:    "men",
			Description: "Fresh mint, green apple and tonka bean",
			Price:       9500,
			Price5ml:    650,
			Price10ml:   1200,
			Stock:       8,
		},
		{
			Slug:            "ysl-libre-edp",
			Title:           "YSL Libre EDP",
			Brand:           "Yves Saint Laurent",
			Category:        "women",
			Description:     "Lavender and orange blossom over musk",
			Price:           14500,
			DiscountedPrice: 13200,
			Price5ml:        850,
			Stock:           5,
		},
		{
			Slug:        "armaf-club-de-nuit",
			Title:       "Armaf Club de Nuit Intense",
			Brand:       "Armaf",
			Category:    "men",
			Description: "Smoky citrus opener with a birch dry-down",
			Price:       4200,
			Stock:       20,
		},
	}

	for _, p := range products {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Slug, err)
		}
	}

	return nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const q = `
INSERT INTO products (slug, title, brand, category, description, price, discounted_price, price_5ml, price_10ml, stock, is_visible)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, TRUE)
ON CONFLICT (slug) DO UPDATE
SET title = EXCLUDED.title,
    brand = EXCLUDED.brand,
    category = EXCLUDED.category,
    description = EXCLUDED.description,
    price = EXCLUDED.price,
    discounted_price = EXCLUDED.discounted_price,
    price_5ml = EXCLUDED.price_5ml,
    price_10ml = EXCLUDED.price_10ml,
    stock = EXCLUDED.stock
`
	_, err := pool.Exec(ctx, q, p.Slug, p.Title, p.Brand, p.Category, p.Description,
		p.Price, p.DiscountedPrice, p.Price5ml, p.Price10ml, p.Stock)
	return err
}
