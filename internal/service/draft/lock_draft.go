package draft

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lumenprint/calendarshop-backend/internal/domain"
	"github.com/lumenprint/calendarshop-backend/pkg/ctxutil"
)

// LockDraft freezes a draft's design. Locking an already LOCKED draft is a
// no-op so that repeated cart insertions stay idempotent; an ORDERED draft
// can no longer move at all.
func (s *Service) LockDraft(ctx context.Context, draftID uuid.UUID) (*domain.Draft, error) {
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

	if d.State == domain.DraftStateLocked {
		return d, nil
	}
	if !d.State.CanTransitionTo(domain.DraftStateLocked) {
		return nil, fmt.Errorf("draft %s is %s, cannot lock: %w", draftID, d.State, domain.ErrConflict)
	}

	if err := s.drafts.UpdateState(ctx, draftID, domain.DraftStateLocked); err != nil {
		return nil, fmt.Errorf("update state: %w", err)
	}
	d.State = domain.DraftStateLocked

	s.log.InfoContext(ctx, "draft locked",
		slog.String("user_id", userID.String()),
		slog.String("draft_id", draftID.String()),
	)
	return d, nil
}
