// Package draft implements the Draft repository using PostgreSQL.
package draft

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/lumenprint/calendarshop-backend/internal/adapter/postgres"
	"github.com/lumenprint/calendarshop-backend/internal/domain"
)

// Repo provides draft persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new draft repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const draftColumns = `id, user_id, product_id, template_id, state, title, created_at, updated_at`

const getByIDSQL = `
SELECT ` + draftColumns + `
FROM drafts
WHERE id = $1`

const listByUserSQL = `
SELECT ` + draftColumns + `
FROM drafts
WHERE user_id = $1
ORDER BY updated_at DESC
LIMIT $2 OFFSET $3`

const countByUserSQL = `
SELECT count(*) FROM drafts WHERE user_id = $1`

const insertDraftSQL = `
INSERT INTO drafts (id, user_id, product_id, template_id, state, title, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`

const insertSlotSQL = `
INSERT INTO draft_slots (id, draft_id, slot_index, content_type, transform, image_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`

const getSlotsSQL = `
SELECT id, draft_id, slot_index, content_type, transform, image_id, created_at, updated_at
FROM draft_slots
WHERE draft_id = $1
ORDER BY slot_index ASC`

const getSlotDetailsSQL = `
SELECT s.id, s.draft_id, s.slot_index, s.content_type, s.transform, s.image_id, s.created_at, s.updated_at,
       i.id, i.user_id, i.storage_id, i.secure_url, i.width, i.height, i.created_at
FROM draft_slots s
LEFT JOIN image_assets i ON s.image_id = i.id
WHERE s.draft_id = $1
ORDER BY s.slot_index ASC`

const updateStateSQL = `
UPDATE drafts SET state = $2, updated_at = $3 WHERE id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a draft by primary key.
func (r *Repo) GetByID(ctx context.Context, draftID uuid.UUID) (*domain.Draft, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	d, err := scanDraft(q.QueryRow(ctx, getByIDSQL, draftID))
	if err != nil {
		return nil, postgres.MapError(err, "draft", draftID)
	}
	return d, nil
}

// ListByUser returns a user's drafts ordered by last update, with pagination.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Draft, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByUserSQL, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list drafts: %w", err)
	}
	defer rows.Close()

	var drafts []*domain.Draft
	for rows.Next() {
		d, err := scanDraft(rows)
		if err != nil {
			return nil, fmt.Errorf("list drafts: %w", err)
		}
		drafts = append(drafts, d)
	}
	return drafts, rows.Err()
}

// CountByUser returns the number of drafts owned by a user.
func (r *Repo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, countByUserSQL, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count drafts: %w", err)
	}
	return count, nil
}

// GetSlots returns a draft's layout slots in slot-index order. Image presence
// is visible through the ImageID field; metadata is not joined here.
func (r *Repo) GetSlots(ctx context.Context, draftID uuid.UUID) ([]domain.DraftSlot, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, getSlotsSQL, draftID)
	if err != nil {
		return nil, fmt.Errorf("get draft slots: %w", err)
	}
	defer rows.Close()

	var slots []domain.DraftSlot
	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("get draft slots: %w", err)
		}
		slots = append(slots, s)
	}
	return slots, rows.Err()
}

// GetSlotDetails returns a draft's slots joined with full image metadata,
// the read model the snapshot builder consumes.
func (r *Repo) GetSlotDetails(ctx context.Context, draftID uuid.UUID) ([]domain.DraftSlotDetail, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, getSlotDetailsSQL, draftID)
	if err != nil {
		return nil, fmt.Errorf("get draft slot details: %w", err)
	}
	defer rows.Close()

	var details []domain.DraftSlotDetail
	for rows.Next() {
		d, err := scanSlotDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("get draft slot details: %w", err)
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a draft and its slots. Callers are expected to run this
// inside a transaction so the draft and slots appear together.
func (r *Repo) Create(ctx context.Context, d *domain.Draft, slots []domain.DraftSlot) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now

	if _, err := q.Exec(ctx, insertDraftSQL,
		d.ID, d.UserID, d.ProductID, d.TemplateID, d.State, d.Title, now,
	); err != nil {
		return postgres.MapError(err, "draft", d.ID)
	}

	batch := &pgx.Batch{}
	for i := range slots {
		s := &slots[i]
		if s.ID == uuid.Nil {
			s.ID = uuid.New()
		}
		s.DraftID = d.ID
		transform, err := marshalTransform(s.Transform)
		if err != nil {
			return fmt.Errorf("draft slot %d: %w", s.SlotIndex, err)
		}
		s.CreatedAt = now
		s.UpdatedAt = now
		batch.Queue(insertSlotSQL, s.ID, s.DraftID, s.SlotIndex, s.ContentType, transform, s.ImageID, now)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()
	for range slots {
		if _, err := results.Exec(); err != nil {
			return postgres.MapError(err, "draft", d.ID)
		}
	}
	return nil
}

// UpdateState sets the draft's lifecycle state.
func (r *Repo) UpdateState(ctx context.Context, draftID uuid.UUID, state domain.DraftState) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, updateStateSQL, draftID, state, time.Now().UTC())
	if err != nil {
		return postgres.MapError(err, "draft", draftID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("draft %s: %w", draftID, domain.ErrNotFound)
	}
	return nil
}

// UpdateTitle sets the draft's title.
func (r *Repo) UpdateTitle(ctx context.Context, draftID uuid.UUID, title *string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE drafts SET title = $2, updated_at = $3 WHERE id = $1`,
		draftID, title, time.Now().UTC(),
	)
	if err != nil {
		return postgres.MapError(err, "draft", draftID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("draft %s: %w", draftID, domain.ErrNotFound)
	}
	return nil
}

// UpdateSlot applies a partial update to one slot of a draft.
func (r *Repo) UpdateSlot(ctx context.Context, draftID uuid.UUID, slotIndex int, upd domain.SlotUpdate) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := sq.Update("draft_slots").
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"draft_id": draftID, "slot_index": slotIndex}).
		PlaceholderFormat(sq.Dollar)

	if upd.Transform != nil {
		transform, err := marshalTransform(upd.Transform)
		if err != nil {
			return fmt.Errorf("draft slot %d: %w", slotIndex, err)
		}
		builder = builder.Set("transform", transform)
	}
	if upd.ClearImage {
		builder = builder.Set("image_id", nil)
	} else if upd.ImageID != nil {
		builder = builder.Set("image_id", *upd.ImageID)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("build slot update: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "draft_slot", draftID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("draft %s slot %d: %w", draftID, slotIndex, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scanning helpers
// ---------------------------------------------------------------------------

func scanDraft(row pgx.Row) (*domain.Draft, error) {
	var d domain.Draft
	err := row.Scan(&d.ID, &d.UserID, &d.ProductID, &d.TemplateID, &d.State, &d.Title, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func scanSlot(row pgx.Row) (domain.DraftSlot, error) {
	var (
		s             domain.DraftSlot
		transformJSON []byte
	)
	err := row.Scan(&s.ID, &s.DraftID, &s.SlotIndex, &s.ContentType, &transformJSON, &s.ImageID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return domain.DraftSlot{}, err
	}
	if err := unmarshalTransform(transformJSON, &s.Transform); err != nil {
		return domain.DraftSlot{}, err
	}
	return s, nil
}

func scanSlotDetail(row pgx.Row) (domain.DraftSlotDetail, error) {
	var (
		d             domain.DraftSlotDetail
		transformJSON []byte
		imgID         *uuid.UUID
		imgUserID     *uuid.UUID
		storageID     *string
		secureURL     *string
		width, height *int
		imgCreatedAt  *time.Time
	)
	err := row.Scan(
		&d.ID, &d.DraftID, &d.SlotIndex, &d.ContentType, &transformJSON, &d.ImageID, &d.CreatedAt, &d.UpdatedAt,
		&imgID, &imgUserID, &storageID, &secureURL, &width, &height, &imgCreatedAt,
	)
	if err != nil {
		return domain.DraftSlotDetail{}, err
	}
	if err := unmarshalTransform(transformJSON, &d.Transform); err != nil {
		return domain.DraftSlotDetail{}, err
	}
	if imgID != nil {
		d.Image = &domain.ImageAsset{
			ID:        *imgID,
			UserID:    *imgUserID,
			StorageID: *storageID,
			SecureURL: *secureURL,
			Width:     *width,
			Height:    *height,
			CreatedAt: *imgCreatedAt,
		}
	}
	return d, nil
}

func marshalTransform(t *domain.Transform) ([]byte, error) {
	if t == nil {
		return nil, nil
	}
	data, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("marshal transform: %w", err)
	}
	return data, nil
}

func unmarshalTransform(data []byte, dst **domain.Transform) error {
	if len(data) == 0 {
		return nil
	}
	var t domain.Transform
	if err := json.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("unmarshal transform: %w", err)
	}
	*dst = &t
	return nil
}
