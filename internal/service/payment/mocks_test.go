package payment

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/lumenprint/calendarshop-backend/internal/adapter/provider/mercadopago"
	"github.com/lumenprint/calendarshop-backend/internal/domain"
)

var (
	_ orderRepo       = &orderRepoMock{}
	_ draftRepo       = &draftRepoMock{}
	_ cartRepo        = &cartRepoMock{}
	_ activityLog     = &activityLogMock{}
	_ paymentProvider = &paymentProviderMock{}
	_ txManager       = &txManagerMock{}
)

type orderRepoMock struct {
	GetByIDFunc             func(ctx context.Context, orderID uuid.UUID) (*domain.Order, error)
	GetItemsFunc            func(ctx context.Context, orderID uuid.UUID) ([]domain.OrderItem, error)
	UpdatePaymentStatusFunc func(ctx context.Context, orderID uuid.UUID, status domain.PaymentStatus) error

	mu    sync.Mutex
	calls struct {
		UpdatePaymentStatus []domain.PaymentStatus
	}
}

func (m *orderRepoMock) GetByID(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	if m.GetByIDFunc == nil {
		panic("orderRepoMock.GetByIDFunc: method is nil but GetByID was just called")
	}
	return m.GetByIDFunc(ctx, orderID)
}

func (m *orderRepoMock) GetItems(ctx context.Context, orderID uuid.UUID) ([]domain.OrderItem, error) {
	if m.GetItemsFunc == nil {
		panic("orderRepoMock.GetItemsFunc: method is nil but GetItems was just called")
	}
	return m.GetItemsFunc(ctx, orderID)
}

func (m *orderRepoMock) UpdatePaymentStatus(ctx context.Context, orderID uuid.UUID, status domain.PaymentStatus) error {
	if m.UpdatePaymentStatusFunc == nil {
		panic("orderRepoMock.UpdatePaymentStatusFunc: method is nil but UpdatePaymentStatus was just called")
	}
	m.mu.Lock()
	m.calls.UpdatePaymentStatus = append(m.calls.UpdatePaymentStatus, status)
	m.mu.Unlock()
	return m.UpdatePaymentStatusFunc(ctx, orderID, status)
}

func (m *orderRepoMock) UpdatePaymentStatusCalls() []domain.PaymentStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.UpdatePaymentStatus
}

type draftRepoMock struct {
	UpdateStateFunc func(ctx context.Context, draftID uuid.UUID, state domain.DraftState) error

	mu    sync.Mutex
	calls struct {
		UpdateState []uuid.UUID
	}
}

func (m *draftRepoMock) UpdateState(ctx context.Context, draftID uuid.UUID, state domain.DraftState) error {
	if m.UpdateStateFunc == nil {
		panic("draftRepoMock.UpdateStateFunc: method is nil but UpdateState was just called")
	}
	m.mu.Lock()
	m.calls.UpdateState = append(m.calls.UpdateState, draftID)
	m.mu.Unlock()
	return m.UpdateStateFunc(ctx, draftID, state)
}

func (m *draftRepoMock) UpdateStateCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.UpdateState
}

type cartRepoMock struct {
	ClearItemsFunc func(ctx context.Context, cartID uuid.UUID) error

	mu    sync.Mutex
	calls struct {
		ClearItems []uuid.UUID
	}
}

func (m *cartRepoMock) ClearItems(ctx context.Context, cartID uuid.UUID) error {
	if m.ClearItemsFunc == nil {
		panic("cartRepoMock.ClearItemsFunc: method is nil but ClearItems was just called")
	}
	m.mu.Lock()
	m.calls.ClearItems = append(m.calls.ClearItems, cartID)
	m.mu.Unlock()
	return m.ClearItemsFunc(ctx, cartID)
}

func (m *cartRepoMock) ClearItemsCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.ClearItems
}

type activityLogMock struct {
	AppendFunc func(ctx context.Context, a domain.OrderActivity) error

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

type paymentProviderMock struct {
	GetPaymentFunc func(ctx context.Context, paymentID string) (*mercadopago.PaymentDetail, error)

	mu    sync.Mutex
	calls struct {
		GetPayment []string
	}
}

func (m *paymentProviderMock) GetPayment(ctx context.Context, paymentID string) (*mercadopago.PaymentDetail, error) {
	if m.GetPaymentFunc == nil {
		panic("paymentProviderMock.GetPaymentFunc: method is nil but GetPayment was just called")
	}
	m.mu.Lock()
	m.calls.GetPayment = append(m.calls.GetPayment, paymentID)
	m.mu.Unlock()
	return m.GetPaymentFunc(ctx, paymentID)
}

func (m *paymentProviderMock) GetPaymentCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.GetPayment
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
