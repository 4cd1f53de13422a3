package draft

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lumenprint/calendarshop-backend/internal/domain"
	"github.com/lumenprint/calendarshop-backend/pkg/ctxutil"
)

// UpdateSlot applies a partial change to one slot of the authenticated
// user's draft: a new transform, an image assignment, or an explicit clear.
// Image assignments reference the asset by id; the asset's metadata is only
// denormalized later, at checkout.
func (s *Service) UpdateSlot(ctx context.Context, input UpdateSlotInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if _, err := s.getOwned(ctx, userID, input.DraftID); err != nil {
		return err
	}
	if err := s.policy.AssertEditable(ctx, input.DraftID); err != nil {
		return err
	}

	slots, err := s.drafts.GetSlots(ctx, input.DraftID)
	if err != nil {
		return fmt.Errorf("get slots: %w", err)
	}
	slot, found := slotAt(slots, input.SlotIndex)
	if !found {
		return fmt.Errorf("draft %s has no slot %d: %w", input.DraftID, input.SlotIndex, domain.ErrNotFound)
	}

	if input.ImageID != nil {
		if slot.ContentType != domain.SlotContentImage {
			return domain.NewValidationError("image_id", "slot does not accept images")
		}
		img, err := s.images.GetByID(ctx, *input.ImageID)
		if err != nil {
			return fmt.Errorf("get image: %w", err)
		}
		if img.UserID != userID {
			return fmt.Errorf("image %s: %w", img.ID, domain.ErrNotFound)
		}
	}

	upd := domain.SlotUpdate{
		Transform:  input.Transform,
		ImageID:    input.ImageID,
		ClearImage: input.ClearImage,
	}
	if err := s.drafts.UpdateSlot(ctx, input.DraftID, input.SlotIndex, upd); err != nil {
		return fmt.Errorf("update slot: %w", err)
	}

	s.log.InfoContext(ctx, "draft slot updated",
		slog.String("user_id", userID.String()),
		slog.String("draft_id", input.DraftID.String()),
		slog.Int("slot_index", input.SlotIndex),
		slog.Bool("image_assigned", input.ImageID != nil),
		slog.Bool("image_cleared", input.ClearImage),
	)
	return nil
}

func slotAt(slots []domain.DraftSlot, index int) (domain.DraftSlot, bool) {
	for _, s := range slots {
		if s.SlotIndex == index {
			return s, true
		}
	}
	return domain.DraftSlot{}, false
}
