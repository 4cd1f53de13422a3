package rest

import "net/http"

// Handlers bundles everything the router mounts.
type Handlers struct {
	Health   *HealthHandler
	Draft    *DraftHandler
	Cart     *CartHandler
	Checkout *CheckoutHandler
	Order    *OrderHandler
	Payment  *PaymentHandler
}

// NewRouter builds the REST route table. Authentication and other
// cross-cutting concerns are applied by the caller as middleware around the
// returned handler.
func NewRouter(h Handlers) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	mux.HandleFunc("POST /drafts", h.Draft.Create)
	mux.HandleFunc("GET /drafts", h.Draft.List)
	mux.HandleFunc("GET /drafts/{id}", h.Draft.Get)
	mux.HandleFunc("PATCH /drafts/{id}", h.Draft.Rename)
	mux.HandleFunc("POST /drafts/{id}/lock", h.Draft.Lock)
	mux.HandleFunc("PUT /drafts/{id}/slots/{index}", h.Draft.UpdateSlot)

	mux.HandleFunc("GET /cart", h.Cart.Get)
	mux.HandleFunc("POST /cart/items", h.Cart.AddItem)
	mux.HandleFunc("PATCH /cart/items/{id}", h.Cart.UpdateItem)
	mux.HandleFunc("DELETE /cart/items/{id}", h.Cart.RemoveItem)

	mux.HandleFunc("POST /checkout", h.Checkout.Checkout)

	mux.HandleFunc("GET /orders", h.Order.List)
	mux.HandleFunc("GET /orders/{id}", h.Order.Get)
	mux.HandleFunc("PATCH /orders/{id}/status", h.Order.UpdateStatus)

	mux.HandleFunc("POST /payments/webhook", h.Payment.Webhook)
	mux.HandleFunc("POST /payments/{id}/confirm", h.Payment.Confirm)

	return mux
}
