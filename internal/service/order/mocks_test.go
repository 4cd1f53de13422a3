package order

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/lumenprint/calendarshop-backend/internal/domain"
)

var (
	_ orderRepo   = &orderRepoMock{}
	_ activityLog = &activityLogMock{}
	_ txManager   = &txManagerMock{}
)

type orderRepoMock struct {
	GetByIDFunc           func(ctx context.Context, orderID uuid.UUID) (*domain.Order, error)
	ListByUserFunc        func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Order, error)
	GetItemsFunc          func(ctx context.Context, orderID uuid.UUID) ([]domain.OrderItem, error)
	UpdateOrderStatusFunc func(ctx context.Context, orderID uuid.UUID, status domain.OrderStatus) error

	mu    sync.Mutex
	calls struct {
		UpdateOrderStatus []domain.OrderStatus
	}
}

func (m *orderRepoMock) GetByID(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	if m.GetByIDFunc == nil {
		panic("orderRepoMock.GetByIDFunc: method is nil but GetByID was just called")
	}
	return m.GetByIDFunc(ctx, orderID)
}

func (m *orderRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Order, error) {
	if m.ListByUserFunc == nil {
		panic("orderRepoMock.ListByUserFunc: method is nil but ListByUser was just called")
	}
	return m.ListByUserFunc(ctx, userID, limit, offset)
}

func (m *orderRepoMock) GetItems(ctx context.Context, orderID uuid.UUID) ([]domain.OrderItem, error) {
	if m.GetItemsFunc == nil {
		panic("orderRepoMock.GetItemsFunc: method is nil but GetItems was just called")
	}
	return m.GetItemsFunc(ctx, orderID)
}

func (m *orderRepoMock) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status domain.OrderStatus) error {
	if m.UpdateOrderStatusFunc == nil {
		panic("orderRepoMock.UpdateOrderStatusFunc: method is nil but UpdateOrderStatus was just called")
	}
	m.mu.Lock()
	m.calls.UpdateOrderStatus = append(m.calls.UpdateOrderStatus, status)
	m.mu.Unlock()
	return m.UpdateOrderStatusFunc(ctx, orderID, status)
}

func (m *orderRepoMock) UpdateOrderStatusCalls() []domain.OrderStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.UpdateOrderStatus
}

type activityLogMock struct {
	AppendFunc      func(ctx context.Context, a domain.OrderActivity) error
	ListByOrderFunc func(ctx context.Context, orderID uuid.UUID, limit int) ([]domain.OrderActivity, error)

	mu    sync.Mutex
	calls struct {
		Append []domain.OrderActivity
	}
}

func (m *activityLogMock) Append(ctx context.Context, a domain.OrderActivity) error {
	if m.AppendFunc == nil {
		panic("activityLogMock.AppendFunc: method is nil but Append was just called")
	}
	m.mu.Lock()
	m.calls.Append = append(m.calls.Append, a)
	m.mu.Unlock()
	return m.AppendFunc(ctx, a)
}

func (m *activityLogMock) AppendCalls() []domain.OrderActivity {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Append
}

func (m *activityLogMock) ListByOrder(ctx context.Context, orderID uuid.UUID, limit int) ([]domain.OrderActivity, error) {
	if m.ListByOrderFunc == nil {
		panic("activityLogMock.ListByOrderFunc: method is nil but ListByOrder was just called")
	}
	return m.ListByOrderFunc(ctx, orderID, limit)
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but RunInTx was just called")
	}
	return m.RunInTxFunc(ctx, fn)
}
