package cart

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lumenprint/calendarshop-backend/internal/domain"
	"github.com/lumenprint/calendarshop-backend/pkg/ctxutil"
)

// AddItem puts a draft into the authenticated user's cart. The line price is
// computed once here (base price plus option modifiers) and the selected
// options are frozen as snapshots, so later catalog edits never change a
// pending cart. Adding an EDITING draft locks it; the lock and the insert
// commit together.
func (s *Service) AddItem(ctx context.Context, input AddItemInput) (*domain.CartItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.Quantity > s.maxQuantity {
		return nil, domain.NewValidationError("quantity", fmt.Sprintf("max %d", s.maxQuantity))
	}

	d, err := s.drafts.GetByID(ctx, input.DraftID)
	if err != nil {
		return nil, fmt.Errorf("get draft: %w", err)
	}
	if d.UserID != userID {
		return nil, fmt.Errorf("draft %s: %w", input.DraftID, domain.ErrNotFound)
	}
	if err := s.policy.AssertCanAddToCart(ctx, input.DraftID); err != nil {
		return nil, err
	}

	// One draft, one cart line, across all carts.
	inCart, err := s.carts.HasItemForDraft(ctx, input.DraftID)
	if err != nil {
		return nil, fmt.Errorf("check draft in cart: %w", err)
	}
	if inCart {
		return nil, fmt.Errorf("draft %s is already in a cart: %w", input.DraftID, domain.ErrConflict)
	}

	product, err := s.catalog.GetProduct(ctx, d.ProductID)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if !product.Active {
		return nil, fmt.Errorf("product %s is not available: %w", product.ID, domain.ErrConflict)
	}

	options, err := s.resolveOptions(ctx, d.ProductID, input.OptionIDs)
	if err != nil {
		return nil, err
	}

	price := product.BasePrice
	snapshots := make([]domain.OptionSnapshot, 0, len(options))
	for _, opt := range options {
		price += opt.PriceModifier
		snapshots = append(snapshots, domain.OptionSnapshot{
			OptionID:      opt.ID,
			Name:          opt.Name,
			Value:         opt.Value,
			PriceModifier: opt.PriceModifier,
		})
	}

	detail, err := s.activeCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	item := &domain.CartItem{
		CartID:    detail.ID,
		DraftID:   d.ID,
		ProductID: product.ID,
		Quantity:  input.Quantity,
		Price:     price,
		Options:   snapshots,
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if d.State == domain.DraftStateEditing {
			if err := s.drafts.UpdateState(txCtx, d.ID, domain.DraftStateLocked); err != nil {
				return fmt.Errorf("lock draft: %w", err)
			}
		}
		if err := s.carts.AddItem(txCtx, item); err != nil {
			return fmt.Errorf("add cart item: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "cart item added",
		slog.String("user_id", userID.String()),
		slog.String("cart_id", detail.ID.String()),
		slog.String("draft_id", d.ID.String()),
		slog.Int("quantity", input.Quantity),
		slog.Int64("price", price),
	)

	return item, nil
}

// resolveOptions loads the selected options and rejects ids that do not
// belong to the product.
func (s *Service) resolveOptions(ctx context.Context, productID uuid.UUID, optionIDs []uuid.UUID) ([]domain.ProductOption, error) {
	if len(optionIDs) == 0 {
		return nil, nil
	}
	options, err := s.catalog.GetOptions(ctx, productID, optionIDs)
	if err != nil {
		return nil, fmt.Errorf("get options: %w", err)
	}
	if len(options) != len(optionIDs) {
		return nil, domain.NewValidationError("option_ids", "contains options not offered for the product")
	}
	return options, nil
}
