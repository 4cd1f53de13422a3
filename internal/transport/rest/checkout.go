package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/lumenprint/calendarshop-backend/internal/service/checkout"
)

// checkoutService defines the minimal interface needed by CheckoutHandler.
type checkoutService interface {
	Checkout(ctx context.Context, input checkout.CheckoutInput) (*checkout.CheckoutResult, error)
}

// CheckoutHandler serves the checkout REST endpoint.
type CheckoutHandler struct {
	svc checkoutService
	log *slog.Logger
}

// NewCheckoutHandler creates a CheckoutHandler.
func NewCheckoutHandler(svc checkoutService, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{svc: svc, log: logger.With("handler", "checkout")}
}

type addressRequest struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type checkoutRequest struct {
	AddressID *uuid.UUID      `json:"address_id,omitempty"`
	Address   *addressRequest `json:"address,omitempty"`
	Name      *string         `json:"name,omitempty"`
	Phone     *string         `json:"phone,omitempty"`
}

type paymentSessionResponse struct {
	ID          string `json:"id"`
	CheckoutURL string `json:"checkout_url"`
}

type checkoutResponse struct {
	Order          orderResponse           `json:"order"`
	Items          []orderItemResponse     `json:"items"`
	PaymentSession *paymentSessionResponse `json:"payment_session,omitempty"`
	AlreadyPending bool                    `json:"already_pending,omitempty"`
}

// Checkout handles POST /checkout.
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := checkout.CheckoutInput{
		AddressID: req.AddressID,
		Name:      req.Name,
		Phone:     req.Phone,
	}
	if req.Address != nil {
		input.Address = &checkout.AddressInput{
			Street:     req.Address.Street,
			City:       req.Address.City,
			PostalCode: req.Address.PostalCode,
			Country:    req.Address.Country,
		}
	}

	result, err := h.svc.Checkout(r.Context(), input)
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	resp := checkoutResponse{
		Order:          toOrderResponse(result.Order),
		Items:          make([]orderItemResponse, 0, len(result.Items)),
		AlreadyPending: result.AlreadyPending,
	}
	for _, it := range result.Items {
		resp.Items = append(resp.Items, toOrderItemResponse(it))
	}
	if result.Session != nil {
		resp.PaymentSession = &paymentSessionResponse{
			ID:          result.Session.ID,
			CheckoutURL: result.Session.InitPoint,
		}
	}

	status := http.StatusCreated
	if result.AlreadyPending {
		status = http.StatusOK
	}
	writeJSON(w, status, resp)
}
