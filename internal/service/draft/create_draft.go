package draft

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lumenprint/calendarshop-backend/internal/domain"
	"github.com/lumenprint/calendarshop-backend/pkg/ctxutil"
)

// CreateDraft starts a new draft for the authenticated user. The draft's
// slots are materialized from the template's slot list, so editing always
// operates on a fixed, fully enumerated set of positions.
func (s *Service) CreateDraft(ctx context.Context, input CreateDraftInput) (*domain.Draft, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	count, err := s.drafts.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count drafts: %w", err)
	}
	if count >= s.maxDrafts {
		return nil, domain.NewValidationError("drafts", fmt.Sprintf("limit reached (max %d)", s.maxDrafts))
	}

	product, err := s.catalog.GetProduct(ctx, input.ProductID)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if !product.Active {
		return nil, fmt.Errorf("product %s is not available: %w", product.ID, domain.ErrConflict)
	}

	template, err := s.resolveTemplate(ctx, input)
	if err != nil {
		return nil, err
	}

	templateSlots, err := s.templates.GetSlots(ctx, template.ID)
	if err != nil {
		return nil, fmt.Errorf("get template slots: %w", err)
	}
	if len(templateSlots) == 0 {
		return nil, fmt.Errorf("template %s has no slots: %w", template.ID, domain.ErrConflict)
	}

	d := &domain.Draft{
		UserID:     userID,
		ProductID:  product.ID,
		TemplateID: template.ID,
		State:      domain.DraftStateEditing,
		Title:      trimOrNil(input.Title),
	}

	slots := make([]domain.DraftSlot, 0, len(templateSlots))
	for _, ts := range templateSlots {
		slots = append(slots, domain.DraftSlot{
			SlotIndex:   ts.SlotIndex,
			ContentType: ts.ContentType,
		})
	}

	if err := s.drafts.Create(ctx, d, slots); err != nil {
		return nil, fmt.Errorf("create draft: %w", err)
	}

	s.log.InfoContext(ctx, "draft created",
		slog.String("user_id", userID.String()),
		slog.String("draft_id", d.ID.String()),
		slog.String("product_id", product.ID.String()),
		slog.Int("slots", len(slots)),
	)

	return d, nil
}

// resolveTemplate picks the explicit template when given, otherwise the
// product's active one. An explicit template must belong to the product and
// still be active.
func (s *Service) resolveTemplate(ctx context.Context, input CreateDraftInput) (*domain.Template, error) {
	if input.TemplateID == nil {
		t, err := s.templates.GetActiveByProduct(ctx, input.ProductID)
		if err != nil {
			return nil, fmt.Errorf("get active template: %w", err)
		}
		return t, nil
	}

	t, err := s.templates.GetByID(ctx, *input.TemplateID)
	if err != nil {
		return nil, fmt.Errorf("get template: %w", err)
	}
	if t.ProductID != input.ProductID {
		return nil, domain.NewValidationError("template_id", "does not belong to the product")
	}
	if !t.Active {
		return nil, fmt.Errorf("template %s is retired: %w", t.ID, domain.ErrConflict)
	}
	return t, nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
