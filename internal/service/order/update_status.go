package order

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lumenprint/calendarshop-backend/internal/domain"
)

// UpdateStatus moves an order along the fulfillment chain
// NEW -> IN_PRODUCTION -> SHIPPED. Transitions only move forward; anything
// else is a conflict. Setting the status it already has is an idempotent
// no-op. The status change and its audit entry commit together.
//
// This is a fulfillment-side operation: it takes the order id directly and
// performs no ownership check.
func (s *Service) UpdateStatus(ctx context.Context, orderID uuid.UUID, next domain.OrderStatus) error {
	if orderID == uuid.Nil {
		return domain.NewValidationError("order_id", "required")
	}
	if !next.IsValid() {
		return domain.NewValidationError("status", "unknown order status")
	}

	o, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("get order: %w", err)
	}

	if o.OrderStatus == next {
		return nil
	}
	if !o.OrderStatus.CanTransitionTo(next) {
		return fmt.Errorf("order %s is %s, cannot become %s: %w",
			orderID, o.OrderStatus, next, domain.ErrConflict)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.orders.UpdateOrderStatus(txCtx, orderID, next); err != nil {
			return fmt.Errorf("update order status: %w", err)
		}
		activityErr := s.activity.Append(txCtx, domain.OrderActivity{
			OrderID:     orderID,
			Type:        domain.ActivityOrderStatusChanged,
			Description: fmt.Sprintf("order status changed from %s to %s", o.OrderStatus, next),
			Metadata: map[string]any{
				"from": o.OrderStatus.String(),
				"to":   next.String(),
			},
		})
		if activityErr != nil {
			return fmt.Errorf("append activity: %w", activityErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "order status updated",
		slog.String("order_id", orderID.String()),
		slog.String("from", o.OrderStatus.String()),
		slog.String("to", next.String()),
	)
	return nil
}
