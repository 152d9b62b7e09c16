package order

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

const orderColumns = `id::text, customer_id::text, app_user_id::text, total_amount, shipping_fee,
       discount, payment_method, trx_id, payment_status, order_status, created_at`

func (r *postgresRepo) Create(ctx context.Context, in CreateInput) (*domain.Order, error) {
	const q = `
INSERT INTO orders (customer_id, app_user_id, total_amount, shipping_fee, discount,
                    payment_method, trx_id, payment_status, order_status)
VALUES ($1, $2, $3, $4, $5, $6, $7, 'pending', 'received')
RETURNING ` + orderColumns
	return r.scanOrder(r.pool.QueryRow(ctx, q,
		in.CustomerID, in.AccountID, in.TotalAmount, in.ShippingFee, in.Discount,
		in.PaymentMethod, in.TrxID))
}

func (r *postgresRepo) AddItems(ctx context.Context, orderID string, items []ItemInput) error {
	if len(items) == 0 {
		return nil
	}
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const q = `
INSERT INTO order_items (order_id, product_id, variant, quantity, unit_price)
VALUES ($1, $2, $3, $4, $5)
`
	for _, item := range items {
		variant := item.Variant.Normalize()
		if _, err := tx.Exec(ctx, q, orderID, item.ProductID, string(variant), item.Quantity, item.UnitPrice); err != nil {
			r.logger.Printf("order repo: add item order=%s product=%s error=%v", orderID, item.ProductID, err)
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const q = `
SELECT ` + orderColumns + `
FROM orders
WHERE id = $1
`
	o, err := r.scanOrder(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		return nil, err
	}

	const itemsQuery = `
SELECT id::text, order_id::text, product_id::text, variant, quantity, unit_price, created_at
FROM order_items
WHERE order_id = $1
ORDER BY created_at ASC
`
	rows, err := r.pool.Query(ctx, itemsQuery, o.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		var variant string
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &variant, &item.Quantity, &item.UnitPrice, &item.CreatedAt); err != nil {
			return nil, err
		}
		item.Variant = domain.Variant(variant)
		o.Items = append(o.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *postgresRepo) ListByAccount(ctx context.Context, accountID string) ([]domain.Order, error) {
	const q = `
SELECT ` + orderColumns + `
FROM orders
WHERE app_user_id = $1
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.AccountID, &o.TotalAmount, &o.ShippingFee,
			&o.Discount, &o.PaymentMethod, &o.TrxID, &o.PaymentStatus, &o.OrderStatus, &o.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	if err := row.Scan(&o.ID, &o.CustomerID, &o.AccountID, &o.TotalAmount, &o.ShippingFee,
		&o.Discount, &o.PaymentMethod, &o.TrxID, &o.PaymentStatus, &o.OrderStatus, &o.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("order repo: scan error=%v", err)
		return nil, err
	}
	return &o, nil
}
