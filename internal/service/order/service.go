package order

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lumenprint/calendarshop-backend/internal/domain"
)

type orderRepo interface {
	GetByID(ctx context.Context, orderID uuid.UUID) (*domain.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Order, error)
	GetItems(ctx context.Context, orderID uuid.UUID) ([]domain.OrderItem, error)
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status domain.OrderStatus) error
}

type activityLog interface {
	Append(ctx context.Context, a domain.OrderActivity) error
	ListByOrder(ctx context.Context, orderID uuid.UUID, limit int) ([]domain.OrderActivity, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides order reads and fulfillment status updates.
type Service struct {
	orders   orderRepo
	activity activityLog
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new Order service.
func NewService(log *slog.Logger, orders orderRepo, activity activityLog, tx txManager) *Service {
	return &Service{
		orders:   orders,
		activity: activity,
		tx:       tx,
		log:      log.With("service", "order"),
	}
}

// getOwned loads an order and hides it behind ErrNotFound when it belongs
// to another user.
func (s *Service) getOwned(ctx context.Context, userID, orderID uuid.UUID) (*domain.Order, error) {
	o, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if o.UserID != userID {
		return nil, fmt.Errorf("order %s: %w", orderID, domain.ErrNotFound)
	}
	return o, nil
}
