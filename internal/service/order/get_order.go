package order

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lumenprint/calendarshop-backend/internal/domain"
	"github.com/lumenprint/calendarshop-backend/pkg/ctxutil"
)

// OrderDetail is an order with its frozen items and activity history.
type OrderDetail struct {
	Order      domain.Order
	Items      []domain.OrderItem
	Activities []domain.OrderActivity
}

// OrderList is one page of a user's orders.
type OrderList struct {
	Orders []*domain.Order
}

const activityHistoryLimit = 50

// GetOrder returns one of the authenticated user's orders with items and
// activity log, newest activity first.
func (s *Service) GetOrder(ctx context.Context, orderID uuid.UUID) (*OrderDetail, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if orderID == uuid.Nil {
		return nil, domain.NewValidationError("order_id", "required")
	}

	o, err := s.getOwned(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	items, err := s.orders.GetItems(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order items: %w", err)
	}
	activities, err := s.activity.ListByOrder(ctx, orderID, activityHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	return &OrderDetail{Order: *o, Items: items, Activities: activities}, nil
}

// ListOrders returns one page of the authenticated user's orders, newest
// first.
func (s *Service) ListOrders(ctx context.Context, limit, offset int) (*OrderList, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if limit < 0 || limit > 100 {
		return nil, domain.NewValidationError("limit", "must be between 0 and 100")
	}
	if offset < 0 {
		return nil, domain.NewValidationError("offset", "must not be negative")
	}
	if limit == 0 {
		limit = 20
	}

	orders, err := s.orders.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return &OrderList{Orders: orders}, nil
}
