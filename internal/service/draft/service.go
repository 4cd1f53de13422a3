package draft

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lumenprint/calendarshop-backend/internal/domain"
)

type draftRepo interface {
	Create(ctx context.Context, d *domain.Draft, slots []domain.DraftSlot) error
	GetByID(ctx context.Context, draftID uuid.UUID) (*domain.Draft, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Draft, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
	GetSlots(ctx context.Context, draftID uuid.UUID) ([]domain.DraftSlot, error)
	GetSlotDetails(ctx context.Context, draftID uuid.UUID) ([]domain.DraftSlotDetail, error)
	UpdateState(ctx context.Context, draftID uuid.UUID, state domain.DraftState) error
	UpdateTitle(ctx context.Context, draftID uuid.UUID, title *string) error
	UpdateSlot(ctx context.Context, draftID uuid.UUID, slotIndex int, upd domain.SlotUpdate) error
}

type templateRepo interface {
	GetActiveByProduct(ctx context.Context, productID uuid.UUID) (*domain.Template, error)
	GetByID(ctx context.Context, templateID uuid.UUID) (*domain.Template, error)
	GetSlots(ctx context.Context, templateID uuid.UUID) ([]domain.TemplateSlot, error)
}

type catalogRepo interface {
	GetProduct(ctx context.Context, productID uuid.UUID) (*domain.Product, error)
}

type imageRepo interface {
	GetByID(ctx context.Context, imageID uuid.UUID) (*domain.ImageAsset, error)
}

type lifecyclePolicy interface {
	AssertEditable(ctx context.Context, draftID uuid.UUID) error
}

// Service provides draft editing operations.
type Service struct {
	drafts    draftRepo
	templates templateRepo
	catalog   catalogRepo
	images    imageRepo
	policy    lifecyclePolicy
	maxDrafts int
	log       *slog.Logger
}

// NewService creates a new Draft service. maxDrafts caps the number of
// drafts one user may keep.
func NewService(
	log *slog.Logger,
	drafts draftRepo,
	templates templateRepo,
	catalog catalogRepo,
	images imageRepo,
	policy lifecyclePolicy,
	maxDrafts int,
) *Service {
	return &Service{
		drafts:    drafts,
		templates: templates,
		catalog:   catalog,
		images:    images,
		policy:    policy,
		maxDrafts: maxDrafts,
		log:       log.With("service", "draft"),
	}
}

// getOwned loads a draft and hides it behind ErrNotFound when it belongs to
// another user. Repo reads are unscoped because reconciliation also loads
// drafts without an authenticated user, so ownership lives here.
func (s *Service) getOwned(ctx context.Context, userID, draftID uuid.UUID) (*domain.Draft, error) {
	d, err := s.drafts.GetByID(ctx, draftID)
	if err != nil {
		return nil, fmt.Errorf("get draft: %w", err)
	}
	if d.UserID != userID {
		return nil, fmt.Errorf("draft %s: %w", draftID, domain.ErrNotFound)
	}
	return d, nil
}
