package cart

import (
	"github.com/google/uuid"

	"github.com/lumenprint/calendarshop-backend/internal/domain"
)

// AddItemInput holds the parameters for adding a draft to the cart.
type AddItemInput struct {
	DraftID   uuid.UUID
	Quantity  int
	OptionIDs []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i AddItemInput) Validate() error {
	var errs []domain.FieldError

	if i.DraftID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "draft_id", Message: "required"})
	}
	if i.Quantity < 1 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be at least 1"})
	}
	for _, id := range i.OptionIDs {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "option_ids", Message: "must not contain the zero id"})
			break
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateItemInput holds the parameters for changing a cart line's quantity.
type UpdateItemInput struct {
	ItemID   uuid.UUID
	Quantity int
}

// Validate checks all fields and collects all errors.
func (i UpdateItemInput) Validate() error {
	var errs []domain.FieldError

	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if i.Quantity < 1 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be at least 1"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
