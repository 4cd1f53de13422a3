package cart

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lumenprint/calendarshop-backend/internal/domain"
)

type cartRepo interface {
	GetActiveByUser(ctx context.Context, userID uuid.UUID) (*domain.CartDetail, error)
	Create(ctx context.Context, userID uuid.UUID) (*domain.Cart, error)
	HasItemForDraft(ctx context.Context, draftID uuid.UUID) (bool, error)
	AddItem(ctx context.Context, item *domain.CartItem) error
	UpdateItemQuantity(ctx context.Context, cartID, itemID uuid.UUID, quantity int) error
	RemoveItem(ctx context.Context, cartID, itemID uuid.UUID) error
}

type draftRepo interface {
	GetByID(ctx context.Context, draftID uuid.UUID) (*domain.Draft, error)
	UpdateState(ctx context.Context, draftID uuid.UUID, state domain.DraftState) error
}

type catalogRepo interface {
	GetProduct(ctx context.Context, productID uuid.UUID) (*domain.Product, error)
	GetOptions(ctx context.Context, productID uuid.UUID, optionIDs []uuid.UUID) ([]domain.ProductOption, error)
}

type lifecyclePolicy interface {
	AssertCanAddToCart(ctx context.Context, draftID uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides cart operations.
type Service struct {
	carts       cartRepo
	drafts      draftRepo
	catalog     catalogRepo
	policy      lifecyclePolicy
	tx          txManager
	maxQuantity int
	log         *slog.Logger
}

// NewService creates a new Cart service. maxQuantity caps the quantity of a
// single cart line.
func NewService(
	log *slog.Logger,
	carts cartRepo,
	drafts draftRepo,
	catalog catalogRepo,
	policy lifecyclePolicy,
	tx txManager,
	maxQuantity int,
) *Service {
	return &Service{
		carts:       carts,
		drafts:      drafts,
		catalog:     catalog,
		policy:      policy,
		tx:          tx,
		maxQuantity: maxQuantity,
		log:         log.With("service", "cart"),
	}
}

// activeCart returns the user's ACTIVE cart, creating it on first use.
func (s *Service) activeCart(ctx context.Context, userID uuid.UUID) (*domain.CartDetail, error) {
	detail, err := s.carts.GetActiveByUser(ctx, userID)
	if err == nil {
		return detail, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get active cart: %w", err)
	}

	c, err := s.carts.Create(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("create cart: %w", err)
	}
	return &domain.CartDetail{Cart: *c}, nil
}
