package checkout

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lumenprint/calendarshop-backend/internal/adapter/provider/mercadopago"
	"github.com/lumenprint/calendarshop-backend/internal/domain"
)

type cartRepo interface {
	GetActiveByUser(ctx context.Context, userID uuid.UUID) (*domain.CartDetail, error)
}

type orderRepo interface {
	FindPendingByCart(ctx context.Context, cartID uuid.UUID) (*domain.Order, error)
	GetItems(ctx context.Context, orderID uuid.UUID) ([]domain.OrderItem, error)
	Create(ctx context.Context, o *domain.Order, items []domain.OrderItem) error
}

type draftRepo interface {
	GetByID(ctx context.Context, draftID uuid.UUID) (*domain.Draft, error)
	GetSlotDetails(ctx context.Context, draftID uuid.UUID) ([]domain.DraftSlotDetail, error)
	UpdateState(ctx context.Context, draftID uuid.UUID, state domain.DraftState) error
}

type templateRepo interface {
	GetSlots(ctx context.Context, templateID uuid.UUID) ([]domain.TemplateSlot, error)
}

type catalogRepo interface {
	GetProduct(ctx context.Context, productID uuid.UUID) (*domain.Product, error)
}

type userRepo interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	UpdateContact(ctx context.Context, userID uuid.UUID, upd domain.ContactUpdate) error
	GetAddress(ctx context.Context, addressID uuid.UUID) (*domain.Address, error)
}

type activityLog interface {
	Append(ctx context.Context, a domain.OrderActivity) error
}

type paymentProvider interface {
	CreatePreference(ctx context.Context, pref mercadopago.PreferenceRequest) (*mercadopago.Preference, error)
}

type lifecyclePolicy interface {
	AssertCheckoutEligible(ctx context.Context, draftID uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// SessionConfig holds the processor-facing settings of the hosted payment
// session.
type SessionConfig struct {
	Currency   string
	SuccessURL string
	FailureURL string
}

// Service turns a validated cart into an immutable order with a pending
// payment session.
type Service struct {
	carts    cartRepo
	orders   orderRepo
	drafts   draftRepo
	tmpl     templateRepo
	catalog  catalogRepo
	users    userRepo
	activity activityLog
	payments paymentProvider
	policy   lifecyclePolicy
	tx       txManager
	session  SessionConfig
	log      *slog.Logger
}

// NewService creates a new Checkout service.
func NewService(
	log *slog.Logger,
	carts cartRepo,
	orders orderRepo,
	drafts draftRepo,
	tmpl templateRepo,
	catalog catalogRepo,
	users userRepo,
	activity activityLog,
	payments paymentProvider,
	policy lifecyclePolicy,
	tx txManager,
	session SessionConfig,
) *Service {
	return &Service{
		carts:    carts,
		orders:   orders,
		drafts:   drafts,
		tmpl:     tmpl,
		catalog:  catalog,
		users:    users,
		activity: activity,
		payments: payments,
		policy:   policy,
		tx:       tx,
		session:  session,
		log:      log.With("service", "checkout"),
	}
}
