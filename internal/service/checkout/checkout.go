package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/lumenprint/calendarshop-backend/internal/adapter/provider/mercadopago"
	"github.com/lumenprint/calendarshop-backend/internal/domain"
	"github.com/lumenprint/calendarshop-backend/internal/service/design"
	"github.com/lumenprint/calendarshop-backend/pkg/ctxutil"
)

// Checkout converts the authenticated user's active cart into an order.
//
// Cart lines are validated strictly in cart order and the first failure
// aborts the whole call, so a retry after fixing one draft reports the next
// problem deterministically. The order row, its item snapshots, and the
// ORDER_PLACED activity commit in one transaction; the cart itself is NOT
// cleared here but on payment confirmation, so a failed payment leaves the
// cart intact for another attempt.
//
// A cart with an order still awaiting payment is not checked out again: the
// pending order is returned with a fresh payment session instead.
func (s *Service) Checkout(ctx context.Context, input CheckoutInput) (*CheckoutResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	// No active cart at all is NotFound; only an existing-but-empty cart is
	// unprocessable (below).
	cart, err := s.carts.GetActiveByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get active cart: %w", err)
	}

	pending, err := s.orders.FindPendingByCart(ctx, cart.ID)
	if err == nil {
		return s.resumePending(ctx, pending)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("find pending order: %w", err)
	}

	if len(cart.Items) == 0 {
		return nil, fmt.Errorf("cart is empty: %w", domain.ErrUnprocessable)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	shipping, err := s.resolveShipping(ctx, user, input)
	if err != nil {
		return nil, err
	}

	items := make([]domain.OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		item, err := s.buildItem(ctx, userID, line)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	order := &domain.Order{
		UserID:        userID,
		CartID:        cart.ID,
		PaymentStatus: domain.PaymentStatusPending,
		OrderStatus:   domain.OrderStatusNew,
		Total:         cart.ComputeTotal(),
		Shipping:      shipping,
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.orders.Create(txCtx, order, items); err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		activityErr := s.activity.Append(txCtx, domain.OrderActivity{
			OrderID:     order.ID,
			Type:        domain.ActivityOrderPlaced,
			Description: "order placed",
			Metadata: map[string]any{
				"total": order.Total,
				"items": len(items),
			},
		})
		if activityErr != nil {
			return fmt.Errorf("append activity: %w", activityErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	session := s.createSession(ctx, order, items, user.Email)

	s.log.InfoContext(ctx, "order placed",
		slog.String("user_id", userID.String()),
		slog.String("order_id", order.ID.String()),
		slog.String("cart_id", cart.ID.String()),
		slog.Int64("total", order.Total),
		slog.Int("items", len(items)),
	)

	return &CheckoutResult{Order: order, Items: items, Session: session}, nil
}

// resumePending returns the still-pending order of this cart with a fresh
// payment session. No rows are written.
func (s *Service) resumePending(ctx context.Context, order *domain.Order) (*CheckoutResult, error) {
	items, err := s.orders.GetItems(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("get order items: %w", err)
	}

	user, err := s.users.GetByID(ctx, order.UserID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	session := s.createSession(ctx, order, items, user.Email)

	s.log.InfoContext(ctx, "checkout resumed pending order",
		slog.String("order_id", order.ID.String()),
		slog.String("cart_id", order.CartID.String()),
	)

	return &CheckoutResult{Order: order, Items: items, Session: session, AlreadyPending: true}, nil
}

// buildItem validates one cart line and freezes it into an order item.
func (s *Service) buildItem(ctx context.Context, userID uuid.UUID, line domain.CartItem) (domain.OrderItem, error) {
	var zero domain.OrderItem

	d, err := s.drafts.GetByID(ctx, line.DraftID)
	if err != nil {
		return zero, fmt.Errorf("cart line draft %s: %w", line.DraftID, err)
	}
	if d.UserID != userID {
		return zero, fmt.Errorf("cart line draft %s belongs to another user: %w", line.DraftID, domain.ErrConflict)
	}

	// A line normally arrives LOCKED, but a draft inserted through an older
	// path may still be EDITING. Lock it now rather than failing.
	if d.State == domain.DraftStateEditing {
		if err := s.drafts.UpdateState(ctx, d.ID, domain.DraftStateLocked); err != nil {
			return zero, fmt.Errorf("lock draft %s: %w", d.ID, err)
		}
		d.State = domain.DraftStateLocked
	}
	if err := s.policy.AssertCheckoutEligible(ctx, d.ID); err != nil {
		return zero, err
	}

	slots, err := s.drafts.GetSlotDetails(ctx, d.ID)
	if err != nil {
		return zero, fmt.Errorf("get slot details: %w", err)
	}
	templateSlots, err := s.tmpl.GetSlots(ctx, d.TemplateID)
	if err != nil {
		return zero, fmt.Errorf("get template slots: %w", err)
	}

	plain := make([]domain.DraftSlot, 0, len(slots))
	for _, sl := range slots {
		plain = append(plain, sl.DraftSlot)
	}
	if res := design.CheckCompleteness(plain, templateSlots); !res.Complete {
		return zero, &domain.IncompleteDesignError{
			DraftID:      d.ID.String(),
			MissingSlots: res.MissingSlots,
		}
	}

	product, err := s.catalog.GetProduct(ctx, line.ProductID)
	if err != nil {
		return zero, fmt.Errorf("get product: %w", err)
	}

	return domain.OrderItem{
		ProductID:   line.ProductID,
		ProductName: product.Name,
		Quantity:    line.Quantity,
		Price:       line.Price,
		Options:     line.Options,
		Design:      design.BuildSnapshot(d, slots),
	}, nil
}

// resolveShipping produces the frozen shipping snapshot and backfills empty
// contact fields on the user record before the order commits.
func (s *Service) resolveShipping(ctx context.Context, user *domain.User, input CheckoutInput) (domain.ShippingSnapshot, error) {
	var zero domain.ShippingSnapshot

	snap := domain.ShippingSnapshot{
		Name:  user.Name,
		Email: user.Email,
	}
	if user.Phone != nil {
		snap.Phone = *user.Phone
	}
	if input.Name != nil {
		snap.Name = strings.TrimSpace(*input.Name)
	}
	if input.Phone != nil {
		snap.Phone = strings.TrimSpace(*input.Phone)
	}
	if snap.Name == "" {
		return zero, domain.NewValidationError("name", "required when the account has no name")
	}

	if input.AddressID != nil {
		addr, err := s.users.GetAddress(ctx, *input.AddressID)
		if err != nil {
			return zero, fmt.Errorf("get address: %w", err)
		}
		if addr.UserID != user.ID {
			return zero, fmt.Errorf("address %s: %w", addr.ID, domain.ErrNotFound)
		}
		snap.Street = addr.Street
		snap.City = addr.City
		snap.PostalCode = addr.PostalCode
		snap.Country = addr.Country
	} else {
		snap.Street = strings.TrimSpace(input.Address.Street)
		snap.City = strings.TrimSpace(input.Address.City)
		snap.PostalCode = strings.TrimSpace(input.Address.PostalCode)
		snap.Country = strings.TrimSpace(input.Address.Country)
	}

	upd := domain.ContactUpdate{}
	if user.Name == "" && input.Name != nil {
		upd.Name = input.Name
	}
	if user.Phone == nil && input.Phone != nil {
		upd.Phone = input.Phone
	}
	if upd.Name != nil || upd.Phone != nil {
		if err := s.users.UpdateContact(ctx, user.ID, upd); err != nil {
			return zero, fmt.Errorf("backfill contact: %w", err)
		}
	}

	return snap, nil
}

// createSession asks the processor for a hosted payment session. The order
// is already committed at this point, so a processor failure degrades to a
// nil session instead of failing the checkout.
func (s *Service) createSession(ctx context.Context, order *domain.Order, items []domain.OrderItem, payerEmail string) *mercadopago.Preference {
	prefItems := make([]mercadopago.PreferenceItem, 0, len(items))
	for _, it := range items {
		prefItems = append(prefItems, mercadopago.PreferenceItem{
			Title:      it.ProductName,
			Quantity:   it.Quantity,
			UnitPrice:  float64(it.Price) / 100,
			CurrencyID: s.session.Currency,
		})
	}

	pref, err := s.payments.CreatePreference(ctx, mercadopago.PreferenceRequest{
		ExternalReference: order.ID.String(),
		Items:             prefItems,
		PayerEmail:        payerEmail,
		SuccessURL:        s.session.SuccessURL,
		FailureURL:        s.session.FailureURL,
	})
	if err != nil {
		s.log.WarnContext(ctx, "payment session creation failed",
			slog.String("order_id", order.ID.String()),
			slog.Any("error", err),
		)
		return nil
	}
	return pref
}
