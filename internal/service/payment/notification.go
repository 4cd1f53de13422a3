package payment

import (
	"context"
	"fmt"

	"github.com/lumenprint/calendarshop-backend/internal/domain"
	"github.com/lumenprint/calendarshop-backend/pkg/ctxutil"
)

// Notification is one incoming webhook delivery from the processor.
type Notification struct {
	PaymentID string
	RequestID string
	Signature string
}

// HandleNotification verifies a webhook delivery and reconciles the payment
// it announces. The notification body itself is never trusted for status;
// only the payment id is taken from it.
func (s *Service) HandleNotification(ctx context.Context, n Notification) error {
	if n.PaymentID == "" {
		return domain.NewValidationError("payment_id", "required")
	}
	if err := verifySignature(s.secret, n.Signature, n.RequestID, n.PaymentID); err != nil {
		return err
	}

	if _, err := s.Reconcile(ctx, n.PaymentID); err != nil {
		return fmt.Errorf("reconcile payment %s: %w", n.PaymentID, err)
	}
	return nil
}

// Confirm is the pull counterpart of the webhook: the client calls it when
// returning from the hosted payment page, naming the payment it just made.
// The reconciled order must belong to the authenticated user.
func (s *Service) Confirm(ctx context.Context, paymentID string) (*domain.Order, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	order, err := s.Reconcile(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, fmt.Errorf("order %s: %w", order.ID, domain.ErrNotFound)
	}
	return order, nil
}
