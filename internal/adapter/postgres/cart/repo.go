// Package cart implements the Cart repository using PostgreSQL.
package cart

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

// Repo provides cart persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new cart repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getActiveByUserSQL = `
SELECT id, user_id, created_at, updated_at
FROM carts
WHERE user_id = $1`

const createCartSQL = `
INSERT INTO carts (id, user_id, created_at, updated_at)
VALUES ($1, $2, $3, $3)`

const getItemsSQL = `
SELECT id, cart_id, draft_id, product_id, quantity, price, options, created_at
FROM cart_items
WHERE cart_id = $1
ORDER BY created_at ASC`

const addItemSQL = `
INSERT INTO cart_items (id, cart_id, draft_id, product_id, quantity, price, options, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

const updateItemQuantitySQL = `
UPDATE cart_items SET quantity = $3 WHERE cart_id = $1 AND id = $2`

const removeItemSQL = `
DELETE FROM cart_items WHERE cart_id = $1 AND id = $2`

const clearItemsSQL = `
DELETE FROM cart_items WHERE cart_id = $1`

const activeItemByDraftSQL = `
SELECT count(*) FROM cart_items WHERE draft_id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetActiveByUser returns the user's active cart with items and total.
// Returns domain.ErrNotFound if the user has no cart yet.
func (r *Repo) GetActiveByUser(ctx context.Context, userID uuid.UUID) (*domain.CartDetail, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var c domain.Cart
	err := q.QueryRow(ctx, getActiveByUserSQL, userID).
		Scan(&c.ID, &c.UserID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "cart", userID)
	}

	items, err := r.getItems(ctx, q, c.ID)
	if err != nil {
		return nil, err
	}

	detail := &domain.CartDetail{Cart: c, Items: items}
	detail.Total = detail.ComputeTotal()
	return detail, nil
}

// GetByID returns a cart with items by primary key. Used by payment
// reconciliation, which reaches the cart through the order's cart id.
func (r *Repo) GetByID(ctx context.Context, cartID uuid.UUID) (*domain.CartDetail, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var c domain.Cart
	err := q.QueryRow(ctx,
		`SELECT id, user_id, created_at, updated_at FROM carts WHERE id = $1`, cartID).
		Scan(&c.ID, &c.UserID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "cart", cartID)
	}

	items, err := r.getItems(ctx, q, c.ID)
	if err != nil {
		return nil, err
	}

	detail := &domain.CartDetail{Cart: c, Items: items}
	detail.Total = detail.ComputeTotal()
	return detail, nil
}

// HasItemForDraft reports whether any cart line references the draft.
// Backs the at-most-one-active-cart-line invariant checked in the service.
func (r *Repo) HasItemForDraft(ctx context.Context, draftID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, activeItemByDraftSQL, draftID).Scan(&count); err != nil {
		return false, fmt.Errorf("count cart items by draft: %w", err)
	}
	return count > 0, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new active cart for the user.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID) (*domain.Cart, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c := domain.Cart{
		ID:        uuid.New(),
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	c.UpdatedAt = c.CreatedAt

	if _, err := q.Exec(ctx, createCartSQL, c.ID, c.UserID, c.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "cart", c.ID)
	}
	return &c, nil
}

// AddItem inserts a cart line.
func (r *Repo) AddItem(ctx context.Context, item *domain.CartItem) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	options, err := json.Marshal(item.Options)
	if err != nil {
		return fmt.Errorf("cart item marshal options: %w", err)
	}

	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	item.CreatedAt = time.Now().UTC()
	if _, err := q.Exec(ctx, addItemSQL,
		item.ID, item.CartID, item.DraftID, item.ProductID, item.Quantity, item.Price, options, item.CreatedAt,
	); err != nil {
		return postgres.MapError(err, "cart_item", item.ID)
	}
	return nil
}

// UpdateItemQuantity sets a cart line's quantity.
func (r *Repo) UpdateItemQuantity(ctx context.Context, cartID, itemID uuid.UUID, quantity int) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, updateItemQuantitySQL, cartID, itemID, quantity)
	if err != nil {
		return postgres.MapError(err, "cart_item", itemID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("cart_item %s: %w", itemID, domain.ErrNotFound)
	}
	return nil
}

// RemoveItem deletes a cart line.
func (r *Repo) RemoveItem(ctx context.Context, cartID, itemID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, removeItemSQL, cartID, itemID)
	if err != nil {
		return postgres.MapError(err, "cart_item", itemID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("cart_item %s: %w", itemID, domain.ErrNotFound)
	}
	return nil
}

// ClearItems deletes all lines from a cart. Deleting zero rows is not an
// error: reconciliation may clear an already-empty cart.
func (r *Repo) ClearItems(ctx context.Context, cartID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, clearItemsSQL, cartID); err != nil {
		return postgres.MapError(err, "cart", cartID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scanning helpers
// ---------------------------------------------------------------------------

func (r *Repo) getItems(ctx context.Context, q postgres.Querier, cartID uuid.UUID) ([]domain.CartItem, error) {
	rows, err := q.Query(ctx, getItemsSQL, cartID)
	if err != nil {
		return nil, fmt.Errorf("get cart items: %w", err)
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("get cart items: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func scanItem(row pgx.Row) (domain.CartItem, error) {
	var (
		item        domain.CartItem
		optionsJSON []byte
	)
	err := row.Scan(&item.ID, &item.CartID, &item.DraftID, &item.ProductID, &item.Quantity, &item.Price, &optionsJSON, &item.CreatedAt)
	if err != nil {
		return domain.CartItem{}, err
	}
	if len(optionsJSON) > 0 {
		if err := json.Unmarshal(optionsJSON, &item.Options); err != nil {
			return domain.CartItem{}, fmt.Errorf("cart item %s unmarshal options: %w", item.ID, err)
		}
	}
	return item, nil
}
