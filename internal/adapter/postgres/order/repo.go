// Package order implements the Order repository using PostgreSQL.
// Orders are created once, with their items, inside a transaction; later
// writes touch only payment_status and order_status.
package order

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/lumenprint/calendarshop-backend/internal/adapter/postgres"
	"github.com/lumenprint/calendarshop-backend/internal/domain"
)

// Repo provides order persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new order repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const orderColumns = `id, user_id, cart_id, payment_status, order_status, total, shipping, created_at, updated_at`

const getByIDSQL = `
SELECT ` + orderColumns + `
FROM orders
WHERE id = $1`

const findPendingByCartSQL = `
SELECT ` + orderColumns + `
FROM orders
WHERE cart_id = $1 AND payment_status = 'PENDING'
LIMIT 1`

const listByUserSQL = `
SELECT ` + orderColumns + `
FROM orders
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

const insertOrderSQL = `
INSERT INTO orders (id, user_id, cart_id, payment_status, order_status, total, shipping, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)`

const insertItemSQL = `
INSERT INTO order_items (id, order_id, product_id, product_name, quantity, price, options, design, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

const getItemsSQL = `
SELECT id, order_id, product_id, product_name, quantity, price, options, design, created_at
FROM order_items
WHERE order_id = $1
ORDER BY created_at ASC`

const updatePaymentStatusSQL = `
UPDATE orders SET payment_status = $2, updated_at = $3 WHERE id = $1`

const updateOrderStatusSQL = `
UPDATE orders SET order_status = $2, updated_at = $3 WHERE id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an order by primary key, without items.
func (r *Repo) GetByID(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	o, err := scanOrder(q.QueryRow(ctx, getByIDSQL, orderID))
	if err != nil {
		return nil, postgres.MapError(err, "order", orderID)
	}
	return o, nil
}

// FindPendingByCart returns the pending-payment order for a cart, if any.
// This is the checkout idempotency lookup; the partial unique index on
// (cart_id) WHERE payment_status = 'PENDING' is the authoritative backstop.
func (r *Repo) FindPendingByCart(ctx context.Context, cartID uuid.UUID) (*domain.Order, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	o, err := scanOrder(q.QueryRow(ctx, findPendingByCartSQL, cartID))
	if err != nil {
		return nil, postgres.MapError(err, "order", cartID)
	}
	return o, nil
}

// ListByUser returns a user's orders newest-first, with pagination.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Order, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByUserSQL, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("list orders: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// GetItems returns an order's line items with their design snapshots.
func (r *Repo) GetItems(ctx context.Context, orderID uuid.UUID) ([]domain.OrderItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, getItemsSQL, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order items: %w", err)
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("get order items: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts an order and all its items. Callers must run this inside a
// transaction: either the order row and every item become visible, or none.
func (r *Repo) Create(ctx context.Context, o *domain.Order, items []domain.OrderItem) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	shipping, err := json.Marshal(o.Shipping)
	if err != nil {
		return fmt.Errorf("order marshal shipping: %w", err)
	}

	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	now := time.Now().UTC()
	o.CreatedAt = now
	o.UpdatedAt = now

	if _, err := q.Exec(ctx, insertOrderSQL,
		o.ID, o.UserID, o.CartID, o.PaymentStatus, o.OrderStatus, o.Total, shipping, now,
	); err != nil {
		return postgres.MapError(err, "order", o.ID)
	}

	batch := &pgx.Batch{}
	for i := range items {
		item := &items[i]
		if item.ID == uuid.Nil {
			item.ID = uuid.New()
		}
		item.OrderID = o.ID
		options, err := json.Marshal(item.Options)
		if err != nil {
			return fmt.Errorf("order item marshal options: %w", err)
		}
		design, err := json.Marshal(item.Design)
		if err != nil {
			return fmt.Errorf("order item marshal design: %w", err)
		}
		item.CreatedAt = now
		batch.Queue(insertItemSQL,
			item.ID, item.OrderID, item.ProductID, item.ProductName, item.Quantity, item.Price, options, design, now)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()
	for range items {
		if _, err := results.Exec(); err != nil {
			return postgres.MapError(err, "order", o.ID)
		}
	}
	return nil
}

// UpdatePaymentStatus sets the order's payment status.
func (r *Repo) UpdatePaymentStatus(ctx context.Context, orderID uuid.UUID, status domain.PaymentStatus) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, updatePaymentStatusSQL, orderID, status, time.Now().UTC())
	if err != nil {
		return postgres.MapError(err, "order", orderID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order %s: %w", orderID, domain.ErrNotFound)
	}
	return nil
}

// UpdateOrderStatus sets the order's fulfillment status.
func (r *Repo) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status domain.OrderStatus) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, updateOrderStatusSQL, orderID, status, time.Now().UTC())
	if err != nil {
		return postgres.MapError(err, "order", orderID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order %s: %w", orderID, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scanning helpers
// ---------------------------------------------------------------------------

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		o            domain.Order
		shippingJSON []byte
	)
	err := row.Scan(&o.ID, &o.UserID, &o.CartID, &o.PaymentStatus, &o.OrderStatus, &o.Total, &shippingJSON, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(shippingJSON) > 0 {
		if err := json.Unmarshal(shippingJSON, &o.Shipping); err != nil {
			return nil, fmt.Errorf("order %s unmarshal shipping: %w", o.ID, err)
		}
	}
	return &o, nil
}

func scanItem(row pgx.Row) (domain.OrderItem, error) {
	var (
		item        domain.OrderItem
		optionsJSON []byte
		designJSON  []byte
	)
	err := row.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName, &item.Quantity, &item.Price, &optionsJSON, &designJSON, &item.CreatedAt)
	if err != nil {
		return domain.OrderItem{}, err
	}
	if len(optionsJSON) > 0 {
		if err := json.Unmarshal(optionsJSON, &item.Options); err != nil {
			return domain.OrderItem{}, fmt.Errorf("order item %s unmarshal options: %w", item.ID, err)
		}
	}
	if err := json.Unmarshal(designJSON, &item.Design); err != nil {
		return domain.OrderItem{}, fmt.Errorf("order item %s unmarshal design: %w", item.ID, err)
	}
	return item, nil
}
