// Package lifecycle enforces the draft state machine's legality rules.
//
// The Policy is the single source of truth for what a draft may do next:
// every mutation path (direct edits, cart insertion, checkout, order
// creation) must consult it instead of re-implementing the rules locally.
// Each assertion re-reads the draft's current state, so a transition that
// became illegal between two calls surfaces as domain.ErrConflict rather
// than silently applying.
package lifecycle

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lumenprint/calendarshop-backend/internal/domain"
)

type draftReader interface {
	GetByID(ctx context.Context, draftID uuid.UUID) (*domain.Draft, error)
}

// Policy is a stateless guard over the draft state machine. Construct it
// once and share it across services.
type Policy struct {
	drafts draftReader
}

// NewPolicy creates a Policy backed by the given draft reader.
func NewPolicy(drafts draftReader) *Policy {
	return &Policy{drafts: drafts}
}

// AssertEditable fails with domain.ErrNotFound if the draft does not exist
// and domain.ErrConflict unless its state is EDITING.
func (p *Policy) AssertEditable(ctx context.Context, draftID uuid.UUID) error {
	d, err := p.drafts.GetByID(ctx, draftID)
	if err != nil {
		return err
	}
	if d.State != domain.DraftStateEditing {
		return fmt.Errorf("draft %s is %s, not editable: %w", draftID, d.State, domain.ErrConflict)
	}
	return nil
}

// AssertCanAddToCart permits EDITING and LOCKED drafts; an ORDERED draft is
// already fulfilled and cannot enter a new cart.
func (p *Policy) AssertCanAddToCart(ctx context.Context, draftID uuid.UUID) error {
	d, err := p.drafts.GetByID(ctx, draftID)
	if err != nil {
		return err
	}
	if d.State == domain.DraftStateOrdered {
		return fmt.Errorf("draft %s already ordered: %w", draftID, domain.ErrConflict)
	}
	return nil
}

// AssertCheckoutEligible fails with domain.ErrConflict unless the draft is
// LOCKED. Checkout never proceeds on a still-editable or already-ordered
// draft.
func (p *Policy) AssertCheckoutEligible(ctx context.Context, draftID uuid.UUID) error {
	d, err := p.drafts.GetByID(ctx, draftID)
	if err != nil {
		return err
	}
	if d.State != domain.DraftStateLocked {
		return fmt.Errorf("draft %s is %s, not checkout eligible: %w", draftID, d.State, domain.ErrConflict)
	}
	return nil
}
