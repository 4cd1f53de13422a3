package draft

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lumenprint/calendarshop-backend/internal/domain"
	"github.com/lumenprint/calendarshop-backend/pkg/ctxutil"
)

// GetDraft returns one of the authenticated user's drafts with its slots.
func (s *Service) GetDraft(ctx context.Context, draftID uuid.UUID) (*DraftDetail, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if draftID == uuid.Nil {
		return nil, domain.NewValidationError("draft_id", "required")
	}

	d, err := s.getOwned(ctx, userID, draftID)
	if err != nil {
		return nil, err
	}

	slots, err := s.drafts.GetSlotDetails(ctx, draftID)
	if err != nil {
		return nil, fmt.Errorf("get slot details: %w", err)
	}

	return &DraftDetail{Draft: *d, Slots: slots}, nil
}

// ListDrafts returns one page of the authenticated user's drafts, newest
// first, plus the total count.
func (s *Service) ListDrafts(ctx context.Context, input ListDraftsInput) (*DraftList, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = 20
	}

	drafts, err := s.drafts.ListByUser(ctx, userID, limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list drafts: %w", err)
	}
	total, err := s.drafts.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count drafts: %w", err)
	}

	return &DraftList{Drafts: drafts, Total: total}, nil
}
