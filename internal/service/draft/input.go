package draft

import (
	"strings"

	"github.com/google/uuid"

	"github.com/lumenprint/calendarshop-backend/internal/domain"
)

// CreateDraftInput holds the parameters for starting a new draft.
// TemplateID is optional; when nil the product's active template is used.
type CreateDraftInput struct {
	ProductID  uuid.UUID
	TemplateID *uuid.UUID
	Title      *string
}

// Validate checks all fields and collects all errors.
func (i CreateDraftInput) Validate() error {
	var errs []domain.FieldError

	if i.ProductID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "product_id", Message: "required"})
	}
	if i.TemplateID != nil && *i.TemplateID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "template_id", Message: "must not be the zero id"})
	}
	if i.Title != nil && len(strings.TrimSpace(*i.Title)) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RenameDraftInput holds the parameters for changing a draft title.
// A nil Title clears it.
type RenameDraftInput struct {
	DraftID uuid.UUID
	Title   *string
}

// Validate checks all fields and collects all errors.
func (i RenameDraftInput) Validate() error {
	var errs []domain.FieldError

	if i.DraftID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "draft_id", Message: "required"})
	}
	if i.Title != nil && len(strings.TrimSpace(*i.Title)) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateSlotInput holds the parameters for mutating one slot of a draft.
// Nil fields are left untouched; ClearImage removes the image assignment.
type UpdateSlotInput struct {
	DraftID    uuid.UUID
	SlotIndex  int
	Transform  *domain.Transform
	ImageID    *uuid.UUID
	ClearImage bool
}

// Validate checks all fields and collects all errors.
func (i UpdateSlotInput) Validate() error {
	var errs []domain.FieldError

	if i.DraftID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "draft_id", Message: "required"})
	}
	if i.SlotIndex < 0 {
		errs = append(errs, domain.FieldError{Field: "slot_index", Message: "must not be negative"})
	}
	if i.Transform == nil && i.ImageID == nil && !i.ClearImage {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one change must be provided"})
	}
	if i.ImageID != nil && *i.ImageID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "image_id", Message: "must not be the zero id"})
	}
	if i.ImageID != nil && i.ClearImage {
		errs = append(errs, domain.FieldError{Field: "image_id", Message: "cannot both assign and clear"})
	}
	if i.Transform != nil && i.Transform.Scale <= 0 {
		errs = append(errs, domain.FieldError{Field: "transform.scale", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListDraftsInput holds the pagination parameters for listing drafts.
type ListDraftsInput struct {
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListDraftsInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > 100 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 100"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
