package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/lumenprint/calendarshop-backend/internal/domain"
	"github.com/lumenprint/calendarshop-backend/internal/service/payment"
)

// paymentService defines the minimal interface needed by PaymentHandler.
type paymentService interface {
	HandleNotification(ctx context.Context, n payment.Notification) error
	Confirm(ctx context.Context, paymentID string) (*domain.Order, error)
}

// PaymentHandler serves payment webhook and confirmation endpoints.
type PaymentHandler struct {
	svc paymentService
	log *slog.Logger
}

// NewPaymentHandler creates a PaymentHandler.
func NewPaymentHandler(svc paymentService, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{svc: svc, log: logger.With("handler", "payment")}
}

type webhookBody struct {
	Action string `json:"action"`
	Type   string `json:"type"`
	Data   struct {
		ID string `json:"id"`
	} `json:"data"`
}

// Webhook handles POST /payments/webhook. The processor identifies the
// payment via the data.id query parameter (or body); the notification body
// itself is never trusted for payment state. Bad signatures get 401 so the
// processor stops retrying a forged delivery; everything else gets 200 once
// the delivery is safely processed or permanently unprocessable.
func (h *PaymentHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	paymentID := r.URL.Query().Get("data.id")

	var body webhookBody
	if err := decodeJSON(r, &body); err == nil {
		if paymentID == "" {
			paymentID = body.Data.ID
		}
		if body.Type != "" && body.Type != "payment" {
			w.WriteHeader(http.StatusOK)
			return
		}
	}

	n := payment.Notification{
		PaymentID: paymentID,
		RequestID: r.Header.Get("X-Request-Id"),
		Signature: r.Header.Get("X-Signature"),
	}

	err := h.svc.HandleNotification(r.Context(), n)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusOK)
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "invalid signature")
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrValidation):
		// Permanently unprocessable delivery. Acknowledge so the processor
		// stops retrying.
		h.log.WarnContext(r.Context(), "unprocessable webhook delivery",
			slog.String("payment_id", paymentID),
			slog.String("error", err.Error()),
		)
		w.WriteHeader(http.StatusOK)
	default:
		h.log.ErrorContext(r.Context(), "webhook reconciliation failed",
			slog.String("payment_id", paymentID),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// Confirm handles POST /payments/{id}/confirm. The client calls this after
// returning from the hosted payment page; it reconciles against the
// processor and returns the caller's order with its settled statuses.
func (h *PaymentHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	paymentID := r.PathValue("id")

	o, err := h.svc.Confirm(r.Context(), paymentID)
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponse(o))
}
