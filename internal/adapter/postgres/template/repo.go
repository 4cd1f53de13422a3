// Package template implements the read-only Template repository.
// Templates define the canonical slot list this core validates drafts against.
package template

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/lumenprint/calendarshop-backend/internal/adapter/postgres"
	"github.com/lumenprint/calendarshop-backend/internal/domain"
)

// Repo provides template reads backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new template repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getActiveByProductSQL = `
SELECT id, product_id, name, active, created_at
FROM templates
WHERE product_id = $1 AND active = true
ORDER BY created_at DESC
LIMIT 1`

const getByIDSQL = `
SELECT id, product_id, name, active, created_at
FROM templates
WHERE id = $1`

const getSlotsSQL = `
SELECT id, template_id, slot_index, content_type, editable, max_images, aspect_ratio
FROM template_slots
WHERE template_id = $1
ORDER BY slot_index ASC`

// GetActiveByProduct returns the product's currently active template.
func (r *Repo) GetActiveByProduct(ctx context.Context, productID uuid.UUID) (*domain.Template, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var t domain.Template
	err := q.QueryRow(ctx, getActiveByProductSQL, productID).
		Scan(&t.ID, &t.ProductID, &t.Name, &t.Active, &t.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "template", productID)
	}
	return &t, nil
}

// GetByID returns a template by primary key.
func (r *Repo) GetByID(ctx context.Context, templateID uuid.UUID) (*domain.Template, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var t domain.Template
	err := q.QueryRow(ctx, getByIDSQL, templateID).
		Scan(&t.ID, &t.ProductID, &t.Name, &t.Active, &t.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "template", templateID)
	}
	return &t, nil
}

// GetSlots returns a template's slot list in slot-index order.
func (r *Repo) GetSlots(ctx context.Context, templateID uuid.UUID) ([]domain.TemplateSlot, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, getSlotsSQL, templateID)
	if err != nil {
		return nil, fmt.Errorf("get template slots: %w", err)
	}
	defer rows.Close()

	var slots []domain.TemplateSlot
	for rows.Next() {
		var s domain.TemplateSlot
		if err := rows.Scan(&s.ID, &s.TemplateID, &s.SlotIndex, &s.ContentType, &s.Editable, &s.MaxImages, &s.AspectRatio); err != nil {
			return nil, fmt.Errorf("get template slots: %w", err)
		}
		slots = append(slots, s)
	}
	return slots, rows.Err()
}
