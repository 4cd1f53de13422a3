// Package user implements the User and Address repositories using PostgreSQL.
// Only the contact fields this core reads and backfills live here; identity
// provisioning belongs to the auth service.
package user

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/lumenprint/calendarshop-backend/internal/adapter/postgres"
	"github.com/lumenprint/calendarshop-backend/internal/domain"
)

// Repo provides user and address persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getByIDSQL = `
SELECT id, email, name, phone, created_at, updated_at
FROM users
WHERE id = $1`

const getAddressSQL = `
SELECT id, user_id, street, city, postal_code, country, created_at
FROM addresses
WHERE id = $1`

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var u domain.User
	err := q.QueryRow(ctx, getByIDSQL, userID).
		Scan(&u.ID, &u.Email, &u.Name, &u.Phone, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "user", userID)
	}
	return &u, nil
}

// UpdateContact applies a partial update to a user's contact fields.
func (r *Repo) UpdateContact(ctx context.Context, userID uuid.UUID, upd domain.ContactUpdate) error {
	if upd.Name == nil && upd.Phone == nil {
		return nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := sq.Update("users").
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": userID}).
		PlaceholderFormat(sq.Dollar)

	if upd.Name != nil {
		builder = builder.Set("name", *upd.Name)
	}
	if upd.Phone != nil {
		builder = builder.Set("phone", *upd.Phone)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("build contact update: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "user", userID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}
	return nil
}

// GetAddress returns a saved address by primary key. Ownership is checked by
// the caller against the returned UserID.
func (r *Repo) GetAddress(ctx context.Context, addressID uuid.UUID) (*domain.Address, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var a domain.Address
	err := q.QueryRow(ctx, getAddressSQL, addressID).
		Scan(&a.ID, &a.UserID, &a.Street, &a.City, &a.PostalCode, &a.Country, &a.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "address", addressID)
	}
	return &a, nil
}
