package payment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lumenprint/calendarshop-backend/internal/domain"
)

// Reconcile fetches the payment from the processor and applies its status to
// the referenced order. It is safe to call any number of times with the same
// payment id: the decisive status comparison happens on a re-read inside the
// transaction, so concurrent duplicate deliveries collapse to one write.
//
// On the first transition to PAID the same transaction also finalizes the
// purchase: every draft embedded in the order's snapshots becomes ORDERED
// and the originating cart is emptied. A PAID order is never downgraded,
// whatever the processor reports later.
func (s *Service) Reconcile(ctx context.Context, paymentID string) (*domain.Order, error) {
	if paymentID == "" {
		return nil, domain.NewValidationError("payment_id", "required")
	}

	detail, err := s.provider.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("fetch payment: %w", err)
	}
	if detail == nil {
		return nil, fmt.Errorf("payment %s: %w", paymentID, domain.ErrNotFound)
	}

	if detail.ExternalReference == "" {
		return nil, domain.NewValidationError("external_reference", "payment carries no order reference")
	}
	orderID, err := uuid.Parse(detail.ExternalReference)
	if err != nil {
		return nil, domain.NewValidationError("external_reference", "not an order id")
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	next, known := mapProcessorStatus(detail.Status)
	if !known {
		s.log.WarnContext(ctx, "unknown processor payment status, ignoring",
			slog.String("payment_id", paymentID),
			slog.String("order_id", orderID.String()),
			slog.String("status", detail.Status),
		)
		return order, nil
	}

	applied := false
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Re-read under the transaction: a concurrent delivery may already
		// have applied this status.
		cur, err := s.orders.GetByID(txCtx, orderID)
		if err != nil {
			return fmt.Errorf("re-read order: %w", err)
		}
		if cur.PaymentStatus == next {
			return nil
		}
		if cur.PaymentStatus == domain.PaymentStatusPaid {
			s.log.WarnContext(txCtx, "ignoring status change for a paid order",
				slog.String("order_id", orderID.String()),
				slog.String("reported", detail.Status),
			)
			return nil
		}

		if err := s.orders.UpdatePaymentStatus(txCtx, orderID, next); err != nil {
			return fmt.Errorf("update payment status: %w", err)
		}
		activityErr := s.activity.Append(txCtx, domain.OrderActivity{
			OrderID:     orderID,
			Type:        domain.ActivityPaymentStatusChanged,
			Description: fmt.Sprintf("payment status changed from %s to %s", cur.PaymentStatus, next),
			Metadata: map[string]any{
				"payment_id":       paymentID,
				"processor_status": detail.Status,
				"from":             cur.PaymentStatus.String(),
				"to":               next.String(),
			},
		})
		if activityErr != nil {
			return fmt.Errorf("append activity: %w", activityErr)
		}

		if next == domain.PaymentStatusPaid {
			if err := s.finalizePurchase(txCtx, cur); err != nil {
				return err
			}
		}

		applied = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if applied {
		order.PaymentStatus = next
		s.log.InfoContext(ctx, "payment reconciled",
			slog.String("payment_id", paymentID),
			slog.String("order_id", orderID.String()),
			slog.String("status", next.String()),
		)
	}
	return order, nil
}

// finalizePurchase marks the order's drafts ORDERED and empties the cart.
// Runs inside the reconciliation transaction, on the first PAID only.
func (s *Service) finalizePurchase(ctx context.Context, order *domain.Order) error {
	items, err := s.orders.GetItems(ctx, order.ID)
	if err != nil {
		return fmt.Errorf("get order items: %w", err)
	}
	for _, draftID := range domain.DraftIDs(items) {
		if err := s.drafts.UpdateState(ctx, draftID, domain.DraftStateOrdered); err != nil {
			return fmt.Errorf("mark draft %s ordered: %w", draftID, err)
		}
	}
	if err := s.carts.ClearItems(ctx, order.CartID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
