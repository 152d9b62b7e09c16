package product

import (
	"context"
	"errors"
	"io"
	"log"

	"perfumebox/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

const productColumns = `id::text, slug, title, brand, category, COALESCE(description, ''),
       COALESCE(top_notes, ''), COALESCE(heart_notes, ''), COALESCE(base_notes, ''),
       price, discounted_price, price_5ml, price_10ml, COALESCE(main_image_url, ''),
       stock, is_visible, created_at`

func (r *postgresRepo) List(ctx context.Context, category string) ([]domain.Product, error) {
	q := `
SELECT ` + productColumns + `
FROM products
WHERE is_visible
`
	args := []interface{}{}
	if category != "" {
		q += ` AND category = $1`
		args = append(args, category)
	}
	q += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("product repo: list category=%q error=%v", category, err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE id = $1
`
	return r.getOne(ctx, q, id)
}

func (r *postgresRepo) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE slug = $1
`
	return r.getOne(ctx, q, slug)
}

func (r *postgresRepo) getOne(ctx context.Context, q string, arg interface{}) (*domain.Product, error) {
	p, err := scanProduct(r.pool.QueryRow(ctx, q, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get error=%v", err)
		return nil, err
	}
	return p, nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	if err := row.Scan(&p.ID, &p.Slug, &p.Title, &p.Brand, &p.Category, &p.Description,
		&p.TopNotes, &p.HeartNotes, &p.BaseNotes,
		&p.Price, &p.DiscountedPrice, &p.Price5ml, &p.Price10ml, &p.MainImageURL,
		&p.Stock, &p.IsVisible, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
