package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/lumenprint/calendarshop-backend/internal/domain"
	"github.com/lumenprint/calendarshop-backend/internal/service/order"
	"github.com/lumenprint/calendarshop-backend/internal/transport/middleware"
)

// orderService defines the minimal interface needed by OrderHandler.
type orderService interface {
	GetOrder(ctx context.Context, orderID uuid.UUID) (*order.OrderDetail, error)
	ListOrders(ctx context.Context, limit, offset int) (*order.OrderList, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, next domain.OrderStatus) error
}

// OrderHandler serves order REST endpoints.
type OrderHandler struct {
	svc orderService
	log *slog.Logger
}

// NewOrderHandler creates an OrderHandler.
func NewOrderHandler(svc orderService, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{svc: svc, log: logger.With("handler", "order")}
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

type orderResponse struct {
	ID            uuid.UUID               `json:"id"`
	PaymentStatus string                  `json:"payment_status"`
	OrderStatus   string                  `json:"order_status"`
	Total         int64                   `json:"total"`
	Shipping      domain.ShippingSnapshot `json:"shipping"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
}

type orderItemResponse struct {
	ID          uuid.UUID               `json:"id"`
	ProductID   uuid.UUID               `json:"product_id"`
	ProductName string                  `json:"product_name"`
	Quantity    int                     `json:"quantity"`
	Price       int64                   `json:"price"`
	Options     []domain.OptionSnapshot `json:"options,omitempty"`
	Design      domain.DesignSnapshot   `json:"design"`
}

type activityResponse struct {
	Type        string         `json:"type"`
	Description string         `json:"description"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

type orderDetailResponse struct {
	orderResponse
	Items      []orderItemResponse `json:"items"`
	Activities []activityResponse  `json:"activities"`
}

type orderListResponse struct {
	Orders []orderResponse `json:"orders"`
}

func toOrderResponse(o *domain.Order) orderResponse {
	return orderResponse{
		ID:            o.ID,
		PaymentStatus: string(o.PaymentStatus),
		OrderStatus:   string(o.OrderStatus),
		Total:         o.Total,
		Shipping:      o.Shipping,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func toOrderItemResponse(it domain.OrderItem) orderItemResponse {
	return orderItemResponse{
		ID:          it.ID,
		ProductID:   it.ProductID,
		ProductName: it.ProductName,
		Quantity:    it.Quantity,
		Price:       it.Price,
		Options:     it.Options,
		Design:      it.Design,
	}
}

// List handles GET /orders?limit=20&offset=0.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListOrders(r.Context(), queryInt(r, "limit", 0), queryInt(r, "offset", 0))
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	resp := orderListResponse{Orders: make([]orderResponse, 0, len(list.Orders))}
	for _, o := range list.Orders {
		resp.Orders = append(resp.Orders, toOrderResponse(o))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /orders/{id}.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	detail, err := h.svc.GetOrder(r.Context(), id)
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	resp := orderDetailResponse{
		orderResponse: toOrderResponse(&detail.Order),
		Items:         make([]orderItemResponse, 0, len(detail.Items)),
		Activities:    make([]activityResponse, 0, len(detail.Activities)),
	}
	for _, it := range detail.Items {
		resp.Items = append(resp.Items, toOrderItemResponse(it))
	}
	for _, a := range detail.Activities {
		resp.Activities = append(resp.Activities, activityResponse{
			Type:        string(a.Type),
			Description: a.Description,
			Metadata:    a.Metadata,
			CreatedAt:   a.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// UpdateStatus handles PATCH /orders/{id}/status. Staff only.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireStaff(r.Context()); err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var req updateOrderStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.UpdateStatus(r.Context(), id, domain.OrderStatus(req.Status)); err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
