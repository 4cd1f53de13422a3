// Package catalog implements read access to products and product options.
package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/lumenprint/calendarshop-backend/internal/adapter/postgres"
	"github.com/lumenprint/calendarshop-backend/internal/domain"
)

// Repo provides catalog reads backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new catalog repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getProductSQL = `
SELECT id, name, base_price, active, created_at
FROM products
WHERE id = $1`

const getOptionsSQL = `
SELECT id, product_id, name, value, price_modifier
FROM product_options
WHERE product_id = $1 AND id = ANY($2::uuid[])`

// GetProduct returns a product by primary key.
func (r *Repo) GetProduct(ctx context.Context, productID uuid.UUID) (*domain.Product, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var p domain.Product
	err := q.QueryRow(ctx, getProductSQL, productID).
		Scan(&p.ID, &p.Name, &p.BasePrice, &p.Active, &p.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "product", productID)
	}
	return &p, nil
}

// GetOptions returns the subset of a product's options matching the given ids.
// Callers must verify that every requested id was found.
func (r *Repo) GetOptions(ctx context.Context, productID uuid.UUID, optionIDs []uuid.UUID) ([]domain.ProductOption, error) {
	if len(optionIDs) == 0 {
		return nil, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, getOptionsSQL, productID, optionIDs)
	if err != nil {
		return nil, fmt.Errorf("get product options: %w", err)
	}
	defer rows.Close()

	var opts []domain.ProductOption
	for rows.Next() {
		var o domain.ProductOption
		if err := rows.Scan(&o.ID, &o.ProductID, &o.Name, &o.Value, &o.PriceModifier); err != nil {
			return nil, fmt.Errorf("get product options: %w", err)
		}
		opts = append(opts, o)
	}
	return opts, rows.Err()
}
