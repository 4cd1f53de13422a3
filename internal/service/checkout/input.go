package checkout

import (
	"strings"

	"github.com/google/uuid"

	"github.com/lumenprint/calendarshop-backend/internal/domain"
)

// AddressInput is an inline shipping destination, used when the customer
// does not pick a saved address.
type AddressInput struct {
	Street     string
	City       string
	PostalCode string
	Country    string
}

// CheckoutInput holds the parameters for turning the active cart into an
// order. Exactly one of AddressID and Address must be set. Name and Phone
// override the stored contact fields for this order and backfill them on the
// user record when empty there.
type CheckoutInput struct {
	AddressID *uuid.UUID
	Address   *AddressInput
	Name      *string
	Phone     *string
}

// Validate checks all fields and collects all errors.
func (i CheckoutInput) Validate() error {
	var errs []domain.FieldError

	switch {
	case i.AddressID == nil && i.Address == nil:
		errs = append(errs, domain.FieldError{Field: "address", Message: "a saved address id or an inline address is required"})
	case i.AddressID != nil && i.Address != nil:
		errs = append(errs, domain.FieldError{Field: "address", Message: "saved address id and inline address are mutually exclusive"})
	}
	if i.AddressID != nil && *i.AddressID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "address_id", Message: "must not be the zero id"})
	}
	if i.Address != nil {
		if strings.TrimSpace(i.Address.Street) == "" {
			errs = append(errs, domain.FieldError{Field: "address.street", Message: "required"})
		}
		if strings.TrimSpace(i.Address.City) == "" {
			errs = append(errs, domain.FieldError{Field: "address.city", Message: "required"})
		}
		if strings.TrimSpace(i.Address.PostalCode) == "" {
			errs = append(errs, domain.FieldError{Field: "address.postal_code", Message: "required"})
		}
		if strings.TrimSpace(i.Address.Country) == "" {
			errs = append(errs, domain.FieldError{Field: "address.country", Message: "required"})
		}
	}
	if i.Name != nil && strings.TrimSpace(*i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "must not be blank"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
