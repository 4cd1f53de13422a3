// Package image implements read access to uploaded image metadata.
// Upload and transformation live in the storage service; this repo only
// resolves metadata for slot assignment and snapshot building.
package image

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/lumenprint/calendarshop-backend/internal/adapter/postgres"
	"github.com/lumenprint/calendarshop-backend/internal/domain"
)

// Repo provides image asset reads backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new image repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getByIDSQL = `
SELECT id, user_id, storage_id, secure_url, width, height, created_at
FROM image_assets
WHERE id = $1`

// GetByID returns an image asset by primary key.
func (r *Repo) GetByID(ctx context.Context, imageID uuid.UUID) (*domain.ImageAsset, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var img domain.ImageAsset
	err := q.QueryRow(ctx, getByIDSQL, imageID).
		Scan(&img.ID, &img.UserID, &img.StorageID, &img.SecureURL, &img.Width, &img.Height, &img.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "image_asset", imageID)
	}
	return &img, nil
}
