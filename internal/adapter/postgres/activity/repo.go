// Package activity implements the OrderActivity repository using PostgreSQL.
// It provides append-only operations; activity rows are never updated or
// deleted.
package activity

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

// Repo provides order activity persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new activity repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const insertSQL = `
INSERT INTO order_activities (id, order_id, type, description, metadata, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

const listByOrderSQL = `
SELECT id, order_id, type, description, metadata, created_at
FROM order_activities
WHERE order_id = $1
ORDER BY created_at DESC
LIMIT $2`

// Append inserts a new activity row.
func (r *Repo) Append(ctx context.Context, a domain.OrderActivity) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	metadata, err := json.Marshal(a.Metadata)
	if err != nil {
		return fmt.Errorf("order_activity marshal metadata: %w", err)
	}

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	if _, err := q.Exec(ctx, insertSQL, a.ID, a.OrderID, a.Type, a.Description, metadata, a.CreatedAt); err != nil {
		return postgres.MapError(err, "order_activity", a.ID)
	}
	return nil
}

// ListByOrder returns an order's activity rows newest-first.
func (r *Repo) ListByOrder(ctx context.Context, orderID uuid.UUID, limit int) ([]domain.OrderActivity, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByOrderSQL, orderID, limit)
	if err != nil {
		return nil, fmt.Errorf("list order activities: %w", err)
	}
	defer rows.Close()

	var activities []domain.OrderActivity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("list order activities: %w", err)
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

func scanActivity(row pgx.Row) (domain.OrderActivity, error) {
	var (
		a            domain.OrderActivity
		metadataJSON []byte
	)
	err := row.Scan(&a.ID, &a.OrderID, &a.Type, &a.Description, &metadataJSON, &a.CreatedAt)
	if err != nil {
		return domain.OrderActivity{}, err
	}
	if len(metadataJSON) > 0 {
		if err := json.Unmarshal(metadataJSON, &a.Metadata); err != nil {
			return domain.OrderActivity{}, fmt.Errorf("order_activity %s unmarshal metadata: %w", a.ID, err)
		}
	}
	return a, nil
}
