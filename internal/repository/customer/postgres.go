package customer

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

func (r *postgresRepo) Create(ctx context.Context, in CreateInput) (*domain.Customer, error) {
	const q = `
INSERT INTO customers (full_name, phone, email, address)
VALUES ($1, $2, $3, $4)
RETURNING id::text, full_name, phone, email, address, created_at
`
	return r.scanCustomer(r.pool.QueryRow(ctx, q, in.FullName, in.Phone, in.Email, in.Address))
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	const q = `
SELECT id::text, full_name, phone, email, address, created_at
FROM customers
WHERE id = $1
`
	return r.scanCustomer(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	if err := row.Scan(&c.ID, &c.FullName, &c.Phone, &c.Email, &c.Address, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("customer repo: scan error=%v", err)
		return nil, err
	}
	return &c, nil
}
