package checkout

import (
	"github.com/lumenprint/calendarshop-backend/internal/adapter/provider/mercadopago"
	"github.com/lumenprint/calendarshop-backend/internal/domain"
)

// CheckoutResult is the outcome of a checkout call. AlreadyPending is true
// when an earlier checkout of the same cart is still awaiting payment and
// was returned instead of creating a duplicate. Session is the hosted
// payment session; it is nil when the processor call failed after the order
// was committed, in which case the client retries the session alone.
type CheckoutResult struct {
	Order          *domain.Order
	Items          []domain.OrderItem
	Session        *mercadopago.Preference
	AlreadyPending bool
}
