package payment

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lumenprint/calendarshop-backend/internal/adapter/provider/mercadopago"
	"github.com/lumenprint/calendarshop-backend/internal/domain"
)

type orderRepo interface {
	GetByID(ctx context.Context, orderID uuid.UUID) (*domain.Order, error)
	GetItems(ctx context.Context, orderID uuid.UUID) ([]domain.OrderItem, error)
	UpdatePaymentStatus(ctx context.Context, orderID uuid.UUID, status domain.PaymentStatus) error
}

type draftRepo interface {
	UpdateState(ctx context.Context, draftID uuid.UUID, state domain.DraftState) error
}

type cartRepo interface {
	ClearItems(ctx context.Context, cartID uuid.UUID) error
}

type activityLog interface {
	Append(ctx context.Context, a domain.OrderActivity) error
}

type paymentProvider interface {
	GetPayment(ctx context.Context, paymentID string) (*mercadopago.PaymentDetail, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service reconciles order payment state against the processor. The
// processor's payment record is the single source of truth: webhook
// deliveries and client confirmations are only triggers to go read it.
type Service struct {
	orders   orderRepo
	drafts   draftRepo
	carts    cartRepo
	activity activityLog
	provider paymentProvider
	tx       txManager
	secret   string
	log      *slog.Logger
}

// NewService creates a new Payment service. secret signs incoming webhook
// notifications.
func NewService(
	log *slog.Logger,
	orders orderRepo,
	drafts draftRepo,
	carts cartRepo,
	activity activityLog,
	provider paymentProvider,
	tx txManager,
	secret string,
) *Service {
	return &Service{
		orders:   orders,
		drafts:   drafts,
		carts:    carts,
		activity: activity,
		provider: provider,
		tx:       tx,
		secret:   secret,
		log:      log.With("service", "payment"),
	}
}
