package cart

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lumenprint/calendarshop-backend/internal/domain"
	"github.com/lumenprint/calendarshop-backend/pkg/ctxutil"
)

// UpdateItemQuantity changes the quantity of one line in the authenticated
// user's active cart. The line price is never recomputed here.
func (s *Service) UpdateItemQuantity(ctx context.Context, input UpdateItemInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}
	if input.Quantity > s.maxQuantity {
		return domain.NewValidationError("quantity", fmt.Sprintf("max %d", s.maxQuantity))
	}

	detail, err := s.carts.GetActiveByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("get active cart: %w", err)
	}
	if !hasItem(detail.Items, input.ItemID) {
		return fmt.Errorf("cart item %s: %w", input.ItemID, domain.ErrNotFound)
	}

	if err := s.carts.UpdateItemQuantity(ctx, detail.ID, input.ItemID, input.Quantity); err != nil {
		return fmt.Errorf("update cart item: %w", err)
	}

	s.log.InfoContext(ctx, "cart item quantity updated",
		slog.String("user_id", userID.String()),
		slog.String("item_id", input.ItemID.String()),
		slog.Int("quantity", input.Quantity),
	)
	return nil
}

// RemoveItem deletes one line from the authenticated user's active cart.
// The referenced draft stays LOCKED; leaving the cart does not reopen it
// for editing.
func (s *Service) RemoveItem(ctx context.Context, itemID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if itemID == uuid.Nil {
		return domain.NewValidationError("item_id", "required")
	}

	detail, err := s.carts.GetActiveByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("get active cart: %w", err)
	}
	if !hasItem(detail.Items, itemID) {
		return fmt.Errorf("cart item %s: %w", itemID, domain.ErrNotFound)
	}

	if err := s.carts.RemoveItem(ctx, detail.ID, itemID); err != nil {
		return fmt.Errorf("remove cart item: %w", err)
	}

	s.log.InfoContext(ctx, "cart item removed",
		slog.String("user_id", userID.String()),
		slog.String("item_id", itemID.String()),
	)
	return nil
}

func hasItem(items []domain.CartItem, itemID uuid.UUID) bool {
	for _, it := range items {
		if it.ID == itemID {
			return true
		}
	}
	return false
}
