package account

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"

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

const accountColumns = `id::text, phone, full_name, email, address, city, created_at`

func (r *postgresRepo) Create(ctx context.Context, in CreateInput) (*domain.Account, error) {
	const q = `
INSERT INTO app_users (phone, full_name, email, address, city)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + accountColumns
	return r.scanAccount(r.pool.QueryRow(ctx, q,
		strings.TrimSpace(in.Phone), in.FullName, in.Email, in.Address, in.City))
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	const q = `
SELECT ` + accountColumns + `
FROM app_users
WHERE id = $1
`
	return r.scanAccount(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) GetByPhone(ctx context.Context, phone string) (*domain.Account, error) {
	const q = `
SELECT ` + accountColumns + `
FROM app_users
WHERE phone = $1
LIMIT 1
`
	return r.scanAccount(r.pool.QueryRow(ctx, q, strings.TrimSpace(phone)))
}

func (r *postgresRepo) Update(ctx context.Context, id string, in UpdateInput) (*domain.Account, error) {
	const q = `
UPDATE app_users
SET full_name = $2, email = $3, address = $4, city = $5
WHERE id = $1
RETURNING ` + accountColumns
	return r.scanAccount(r.pool.QueryRow(ctx, q, id, in.FullName, in.Email, in.Address, in.City))
}

func (r *postgresRepo) scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	if err := row.Scan(&a.ID, &a.Phone, &a.FullName, &a.Email, &a.Address, &a.City, &a.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("account repo: scan error=%v", err)
		return nil, err
	}
	return &a, nil
}
