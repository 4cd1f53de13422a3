package cart

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/lumenprint/calendarshop-backend/internal/domain"
)

var (
	_ cartRepo        = &cartRepoMock{}
	_ draftRepo       = &draftRepoMock{}
	_ catalogRepo     = &catalogRepoMock{}
	_ lifecyclePolicy = &lifecyclePolicyMock{}
	_ txManager       = &txManagerMock{}
)

type cartRepoMock struct {
	GetActiveByUserFunc    func(ctx context.Context, userID uuid.UUID) (*domain.CartDetail, error)
	CreateFunc             func(ctx context.Context, userID uuid.UUID) (*domain.Cart, error)
	HasItemForDraftFunc    func(ctx context.Context, draftID uuid.UUID) (bool, error)
	AddItemFunc            func(ctx context.Context, item *domain.CartItem) error
	UpdateItemQuantityFunc func(ctx context.Context, cartID, itemID uuid.UUID, quantity int) error
	RemoveItemFunc         func(ctx context.Context, cartID, itemID uuid.UUID) error

	mu    sync.Mutex
	calls struct {
		Create     []uuid.UUID
		AddItem    []*domain.CartItem
		RemoveItem []uuid.UUID
	}
}

func (m *cartRepoMock) GetActiveByUser(ctx context.Context, userID uuid.UUID) (*domain.CartDetail, error) {
	if m.GetActiveByUserFunc == nil {
		panic("cartRepoMock.GetActiveByUserFunc: method is nil but GetActiveByUser was just called")
	}
	return m.GetActiveByUserFunc(ctx, userID)
}

func (m *cartRepoMock) Create(ctx context.Context, userID uuid.UUID) (*domain.Cart, error) {
	if m.CreateFunc == nil {
		panic("cartRepoMock.CreateFunc: method is nil but Create was just called")
	}
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, userID)
	m.mu.Unlock()
	return m.CreateFunc(ctx, userID)
}

func (m *cartRepoMock) CreateCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

func (m *cartRepoMock) HasItemForDraft(ctx context.Context, draftID uuid.UUID) (bool, error) {
	if m.HasItemForDraftFunc == nil {
		panic("cartRepoMock.HasItemForDraftFunc: method is nil but HasItemForDraft was just called")
	}
	return m.HasItemForDraftFunc(ctx, draftID)
}

func (m *cartRepoMock) AddItem(ctx context.Context, item *domain.CartItem) error {
	if m.AddItemFunc == nil {
		panic("cartRepoMock.AddItemFunc: method is nil but AddItem was just called")
	}
	m.mu.Lock()
	m.calls.AddItem = append(m.calls.AddItem, item)
	m.mu.Unlock()
	return m.AddItemFunc(ctx, item)
}

func (m *cartRepoMock) AddItemCalls() []*domain.CartItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.AddItem
}

func (m *cartRepoMock) UpdateItemQuantity(ctx context.Context, cartID, itemID uuid.UUID, quantity int) error {
	if m.UpdateItemQuantityFunc == nil {
		panic("cartRepoMock.UpdateItemQuantityFunc: method is nil but UpdateItemQuantity was just called")
	}
	return m.UpdateItemQuantityFunc(ctx, cartID, itemID, quantity)
}

func (m *cartRepoMock) RemoveItem(ctx context.Context, cartID, itemID uuid.UUID) error {
	if m.RemoveItemFunc == nil {
		panic("cartRepoMock.RemoveItemFunc: method is nil but RemoveItem was just called")
	}
	m.mu.Lock()
	m.calls.RemoveItem = append(m.calls.RemoveItem, itemID)
	m.mu.Unlock()
	return m.RemoveItemFunc(ctx, cartID, itemID)
}

func (m *cartRepoMock) RemoveItemCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.RemoveItem
}

type draftRepoMock struct {
	GetByIDFunc     func(ctx context.Context, draftID uuid.UUID) (*domain.Draft, error)
	UpdateStateFunc func(ctx context.Context, draftID uuid.UUID, state domain.DraftState) error

	mu    sync.Mutex
	calls struct {
		UpdateState []domain.DraftState
	}
}

func (m *draftRepoMock) GetByID(ctx context.Context, draftID uuid.UUID) (*domain.Draft, error) {
	if m.GetByIDFunc == nil {
		panic("draftRepoMock.GetByIDFunc: method is nil but GetByID was just called")
	}
	return m.GetByIDFunc(ctx, draftID)
}

func (m *draftRepoMock) UpdateState(ctx context.Context, draftID uuid.UUID, state domain.DraftState) error {
	if m.UpdateStateFunc == nil {
		panic("draftRepoMock.UpdateStateFunc: method is nil but UpdateState was just called")
	}
	m.mu.Lock()
	m.calls.UpdateState = append(m.calls.UpdateState, state)
	m.mu.Unlock()
	return m.UpdateStateFunc(ctx, draftID, state)
}

func (m *draftRepoMock) UpdateStateCalls() []domain.DraftState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.UpdateState
}

type catalogRepoMock struct {
	GetProductFunc func(ctx context.Context, productID uuid.UUID) (*domain.Product, error)
	GetOptionsFunc func(ctx context.Context, productID uuid.UUID, optionIDs []uuid.UUID) ([]domain.ProductOption, error)
}

func (m *catalogRepoMock) GetProduct(ctx context.Context, productID uuid.UUID) (*domain.Product, error) {
	if m.GetProductFunc == nil {
		panic("catalogRepoMock.GetProductFunc: method is nil but GetProduct was just called")
	}
	return m.GetProductFunc(ctx, productID)
}

func (m *catalogRepoMock) GetOptions(ctx context.Context, productID uuid.UUID, optionIDs []uuid.UUID) ([]domain.ProductOption, error) {
	if m.GetOptionsFunc == nil {
		panic("catalogRepoMock.GetOptionsFunc: method is nil but GetOptions was just called")
	}
	return m.GetOptionsFunc(ctx, productID, optionIDs)
}

type lifecyclePolicyMock struct {
	AssertCanAddToCartFunc func(ctx context.Context, draftID uuid.UUID) error
}

func (m *lifecyclePolicyMock) AssertCanAddToCart(ctx context.Context, draftID uuid.UUID) error {
	if m.AssertCanAddToCartFunc == nil {
		panic("lifecyclePolicyMock.AssertCanAddToCartFunc: method is nil but AssertCanAddToCart was just called")
	}
	return m.AssertCanAddToCartFunc(ctx, draftID)
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
