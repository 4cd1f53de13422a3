package checkout

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/lumenprint/calendarshop-backend/internal/adapter/provider/mercadopago"
	"github.com/lumenprint/calendarshop-backend/internal/domain"
)

var (
	_ cartRepo        = &cartRepoMock{}
	_ orderRepo       = &orderRepoMock{}
	_ draftRepo       = &draftRepoMock{}
	_ templateRepo    = &templateRepoMock{}
	_ catalogRepo     = &catalogRepoMock{}
	_ userRepo        = &userRepoMock{}
	_ activityLog     = &activityLogMock{}
	_ paymentProvider = &paymentProviderMock{}
	_ lifecyclePolicy = &lifecyclePolicyMock{}
	_ txManager       = &txManagerMock{}
)

type cartRepoMock struct {
	GetActiveByUserFunc func(ctx context.Context, userID uuid.UUID) (*domain.CartDetail, error)
}

func (m *cartRepoMock) GetActiveByUser(ctx context.Context, userID uuid.UUID) (*domain.CartDetail, error) {
	if m.GetActiveByUserFunc == nil {
		panic("cartRepoMock.GetActiveByUserFunc: method is nil but GetActiveByUser was just called")
	}
	return m.GetActiveByUserFunc(ctx, userID)
}

type orderRepoMock struct {
	FindPendingByCartFunc func(ctx context.Context, cartID uuid.UUID) (*domain.Order, error)
	GetItemsFunc          func(ctx context.Context, orderID uuid.UUID) ([]domain.OrderItem, error)
	CreateFunc            func(ctx context.Context, o *domain.Order, items []domain.OrderItem) error

	mu    sync.Mutex
	calls struct {
		Create []struct {
			Order *domain.Order
			Items []domain.OrderItem
		}
	}
}

func (m *orderRepoMock) FindPendingByCart(ctx context.Context, cartID uuid.UUID) (*domain.Order, error) {
	if m.FindPendingByCartFunc == nil {
		panic("orderRepoMock.FindPendingByCartFunc: method is nil but FindPendingByCart was just called")
	}
	return m.FindPendingByCartFunc(ctx, cartID)
}

func (m *orderRepoMock) GetItems(ctx context.Context, orderID uuid.UUID) ([]domain.OrderItem, error) {
	if m.GetItemsFunc == nil {
		panic("orderRepoMock.GetItemsFunc: method is nil but GetItems was just called")
	}
	return m.GetItemsFunc(ctx, orderID)
}

func (m *orderRepoMock) Create(ctx context.Context, o *domain.Order, items []domain.OrderItem) error {
	if m.CreateFunc == nil {
		panic("orderRepoMock.CreateFunc: method is nil but Create was just called")
	}
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, struct {
		Order *domain.Order
		Items []domain.OrderItem
	}{Order: o, Items: items})
	m.mu.Unlock()
	return m.CreateFunc(ctx, o, items)
}

func (m *orderRepoMock) CreateCalls() []struct {
	Order *domain.Order
	Items []domain.OrderItem
} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

type draftRepoMock struct {
	GetByIDFunc        func(ctx context.Context, draftID uuid.UUID) (*domain.Draft, error)
	GetSlotDetailsFunc func(ctx context.Context, draftID uuid.UUID) ([]domain.DraftSlotDetail, error)
	UpdateStateFunc    func(ctx context.Context, draftID uuid.UUID, state domain.DraftState) error

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

func (m *draftRepoMock) GetSlotDetails(ctx context.Context, draftID uuid.UUID) ([]domain.DraftSlotDetail, error) {
	if m.GetSlotDetailsFunc == nil {
		panic("draftRepoMock.GetSlotDetailsFunc: method is nil but GetSlotDetails was just called")
	}
	return m.GetSlotDetailsFunc(ctx, draftID)
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

type templateRepoMock struct {
	GetSlotsFunc func(ctx context.Context, templateID uuid.UUID) ([]domain.TemplateSlot, error)
}

func (m *templateRepoMock) GetSlots(ctx context.Context, templateID uuid.UUID) ([]domain.TemplateSlot, error) {
	if m.GetSlotsFunc == nil {
		panic("templateRepoMock.GetSlotsFunc: method is nil but GetSlots was just called")
	}
	return m.GetSlotsFunc(ctx, templateID)
}

type catalogRepoMock struct {
	GetProductFunc func(ctx context.Context, productID uuid.UUID) (*domain.Product, error)
}

func (m *catalogRepoMock) GetProduct(ctx context.Context, productID uuid.UUID) (*domain.Product, error) {
	if m.GetProductFunc == nil {
		panic("catalogRepoMock.GetProductFunc: method is nil but GetProduct was just called")
	}
	return m.GetProductFunc(ctx, productID)
}

type userRepoMock struct {
	GetByIDFunc       func(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	UpdateContactFunc func(ctx context.Context, userID uuid.UUID, upd domain.ContactUpdate) error
	GetAddressFunc    func(ctx context.Context, addressID uuid.UUID) (*domain.Address, error)

	mu    sync.Mutex
	calls struct {
		UpdateContact []domain.ContactUpdate
	}
}

func (m *userRepoMock) GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	if m.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but GetByID was just called")
	}
	return m.GetByIDFunc(ctx, userID)
}

func (m *userRepoMock) UpdateContact(ctx context.Context, userID uuid.UUID, upd domain.ContactUpdate) error {
	if m.UpdateContactFunc == nil {
		panic("userRepoMock.UpdateContactFunc: method is nil but UpdateContact was just called")
	}
	m.mu.Lock()
	m.calls.UpdateContact = append(m.calls.UpdateContact, upd)
	m.mu.Unlock()
	return m.UpdateContactFunc(ctx, userID, upd)
}

func (m *userRepoMock) UpdateContactCalls() []domain.ContactUpdate {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.UpdateContact
}

func (m *userRepoMock) GetAddress(ctx context.Context, addressID uuid.UUID) (*domain.Address, error) {
	if m.GetAddressFunc == nil {
		panic("userRepoMock.GetAddressFunc: method is nil but GetAddress was just called")
	}
	return m.GetAddressFunc(ctx, addressID)
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
	CreatePreferenceFunc func(ctx context.Context, pref mercadopago.PreferenceRequest) (*mercadopago.Preference, error)

	mu    sync.Mutex
	calls struct {
		CreatePreference []mercadopago.PreferenceRequest
	}
}

func (m *paymentProviderMock) CreatePreference(ctx context.Context, pref mercadopago.PreferenceRequest) (*mercadopago.Preference, error) {
	if m.CreatePreferenceFunc == nil {
		panic("paymentProviderMock.CreatePreferenceFunc: method is nil but CreatePreference was just called")
	}
	m.mu.Lock()
	m.calls.CreatePreference = append(m.calls.CreatePreference, pref)
	m.mu.Unlock()
	return m.CreatePreferenceFunc(ctx, pref)
}

func (m *paymentProviderMock) CreatePreferenceCalls() []mercadopago.PreferenceRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.CreatePreference
}

type lifecyclePolicyMock struct {
	AssertCheckoutEligibleFunc func(ctx context.Context, draftID uuid.UUID) error
}

func (m *lifecyclePolicyMock) AssertCheckoutEligible(ctx context.Context, draftID uuid.UUID) error {
	if m.AssertCheckoutEligibleFunc == nil {
		panic("lifecyclePolicyMock.AssertCheckoutEligibleFunc: method is nil but AssertCheckoutEligible was just called")
	}
	return m.AssertCheckoutEligibleFunc(ctx, draftID)
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
