package draft

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/lumenprint/calendarshop-backend/internal/domain"
)

var (
	_ draftRepo       = &draftRepoMock{}
	_ templateRepo    = &templateRepoMock{}
	_ catalogRepo     = &catalogRepoMock{}
	_ imageRepo       = &imageRepoMock{}
	_ lifecyclePolicy = &lifecyclePolicyMock{}
)

type draftRepoMock struct {
	CreateFunc         func(ctx context.Context, d *domain.Draft, slots []domain.DraftSlot) error
	GetByIDFunc        func(ctx context.Context, draftID uuid.UUID) (*domain.Draft, error)
	ListByUserFunc     func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Draft, error)
	CountByUserFunc    func(ctx context.Context, userID uuid.UUID) (int, error)
	GetSlotsFunc       func(ctx context.Context, draftID uuid.UUID) ([]domain.DraftSlot, error)
	GetSlotDetailsFunc func(ctx context.Context, draftID uuid.UUID) ([]domain.DraftSlotDetail, error)
	UpdateStateFunc    func(ctx context.Context, draftID uuid.UUID, state domain.DraftState) error
	UpdateTitleFunc    func(ctx context.Context, draftID uuid.UUID, title *string) error
	UpdateSlotFunc     func(ctx context.Context, draftID uuid.UUID, slotIndex int, upd domain.SlotUpdate) error

	mu    sync.Mutex
	calls struct {
		Create      []uuid.UUID
		UpdateState []domain.DraftState
		UpdateSlot  []domain.SlotUpdate
		UpdateTitle int
	}
}

func (m *draftRepoMock) Create(ctx context.Context, d *domain.Draft, slots []domain.DraftSlot) error {
	if m.CreateFunc == nil {
		panic("draftRepoMock.CreateFunc: method is nil but Create was just called")
	}
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, d.ProductID)
	m.mu.Unlock()
	return m.CreateFunc(ctx, d, slots)
}

func (m *draftRepoMock) CreateCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

func (m *draftRepoMock) GetByID(ctx context.Context, draftID uuid.UUID) (*domain.Draft, error) {
	if m.GetByIDFunc == nil {
		panic("draftRepoMock.GetByIDFunc: method is nil but GetByID was just called")
	}
	return m.GetByIDFunc(ctx, draftID)
}

func (m *draftRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Draft, error) {
	if m.ListByUserFunc == nil {
		panic("draftRepoMock.ListByUserFunc: method is nil but ListByUser was just called")
	}
	return m.ListByUserFunc(ctx, userID, limit, offset)
}

func (m *draftRepoMock) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if m.CountByUserFunc == nil {
		panic("draftRepoMock.CountByUserFunc: method is nil but CountByUser was just called")
	}
	return m.CountByUserFunc(ctx, userID)
}

func (m *draftRepoMock) GetSlots(ctx context.Context, draftID uuid.UUID) ([]domain.DraftSlot, error) {
	if m.GetSlotsFunc == nil {
		panic("draftRepoMock.GetSlotsFunc: method is nil but GetSlots was just called")
	}
	return m.GetSlotsFunc(ctx, draftID)
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

func (m *draftRepoMock) UpdateTitle(ctx context.Context, draftID uuid.UUID, title *string) error {
	if m.UpdateTitleFunc == nil {
		panic("draftRepoMock.UpdateTitleFunc: method is nil but UpdateTitle was just called")
	}
	m.mu.Lock()
	m.calls.UpdateTitle++
	m.mu.Unlock()
	return m.UpdateTitleFunc(ctx, draftID, title)
}

func (m *draftRepoMock) UpdateTitleCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.UpdateTitle
}

func (m *draftRepoMock) UpdateSlot(ctx context.Context, draftID uuid.UUID, slotIndex int, upd domain.SlotUpdate) error {
	if m.UpdateSlotFunc == nil {
		panic("draftRepoMock.UpdateSlotFunc: method is nil but UpdateSlot was just called")
	}
	m.mu.Lock()
	m.calls.UpdateSlot = append(m.calls.UpdateSlot, upd)
	m.mu.Unlock()
	return m.UpdateSlotFunc(ctx, draftID, slotIndex, upd)
}

func (m *draftRepoMock) UpdateSlotCalls() []domain.SlotUpdate {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.UpdateSlot
}

type templateRepoMock struct {
	GetActiveByProductFunc func(ctx context.Context, productID uuid.UUID) (*domain.Template, error)
	GetByIDFunc            func(ctx context.Context, templateID uuid.UUID) (*domain.Template, error)
	GetSlotsFunc           func(ctx context.Context, templateID uuid.UUID) ([]domain.TemplateSlot, error)
}

func (m *templateRepoMock) GetActiveByProduct(ctx context.Context, productID uuid.UUID) (*domain.Template, error) {
	if m.GetActiveByProductFunc == nil {
		panic("templateRepoMock.GetActiveByProductFunc: method is nil but GetActiveByProduct was just called")
	}
	return m.GetActiveByProductFunc(ctx, productID)
}

func (m *templateRepoMock) GetByID(ctx context.Context, templateID uuid.UUID) (*domain.Template, error) {
	if m.GetByIDFunc == nil {
		panic("templateRepoMock.GetByIDFunc: method is nil but GetByID was just called")
	}
	return m.GetByIDFunc(ctx, templateID)
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

type imageRepoMock struct {
	GetByIDFunc func(ctx context.Context, imageID uuid.UUID) (*domain.ImageAsset, error)
}

func (m *imageRepoMock) GetByID(ctx context.Context, imageID uuid.UUID) (*domain.ImageAsset, error) {
	if m.GetByIDFunc == nil {
		panic("imageRepoMock.GetByIDFunc: method is nil but GetByID was just called")
	}
	return m.GetByIDFunc(ctx, imageID)
}

type lifecyclePolicyMock struct {
	AssertEditableFunc func(ctx context.Context, draftID uuid.UUID) error
}

func (m *lifecyclePolicyMock) AssertEditable(ctx context.Context, draftID uuid.UUID) error {
	if m.AssertEditableFunc == nil {
		panic("lifecyclePolicyMock.AssertEditableFunc: method is nil but AssertEditable was just called")
	}
	return m.AssertEditableFunc(ctx, draftID)
}
