package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/lumenprint/calendarshop-backend/internal/domain"
	"github.com/lumenprint/calendarshop-backend/internal/service/cart"
)

// cartService defines the minimal interface needed by CartHandler.
type cartService interface {
	GetCart(ctx context.Context) (*domain.CartDetail, error)
	AddItem(ctx context.Context, input cart.AddItemInput) (*domain.CartItem, error)
	UpdateItemQuantity(ctx context.Context, input cart.UpdateItemInput) error
	RemoveItem(ctx context.Context, itemID uuid.UUID) error
}

// CartHandler serves cart REST endpoints.
type CartHandler struct {
	svc cartService
	log *slog.Logger
}

// NewCartHandler creates a CartHandler.
func NewCartHandler(svc cartService, logger *slog.Logger) *CartHandler {
	return &CartHandler{svc: svc, log: logger.With("handler", "cart")}
}

type addItemRequest struct {
	DraftID   uuid.UUID   `json:"draft_id"`
	Quantity  int         `json:"quantity"`
	OptionIDs []uuid.UUID `json:"option_ids,omitempty"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

type cartItemResponse struct {
	ID        uuid.UUID               `json:"id"`
	DraftID   uuid.UUID               `json:"draft_id"`
	ProductID uuid.UUID               `json:"product_id"`
	Quantity  int                     `json:"quantity"`
	Price     int64                   `json:"price"`
	Options   []domain.OptionSnapshot `json:"options,omitempty"`
	CreatedAt time.Time               `json:"created_at"`
}

type cartResponse struct {
	ID    uuid.UUID          `json:"id"`
	Items []cartItemResponse `json:"items"`
	Total int64              `json:"total"`
}

func toCartItemResponse(it domain.CartItem) cartItemResponse {
	return cartItemResponse{
		ID:        it.ID,
		DraftID:   it.DraftID,
		ProductID: it.ProductID,
		Quantity:  it.Quantity,
		Price:     it.Price,
		Options:   it.Options,
		CreatedAt: it.CreatedAt,
	}
}

func toCartResponse(c *domain.CartDetail) cartResponse {
	resp := cartResponse{
		ID:    c.ID,
		Items: make([]cartItemResponse, 0, len(c.Items)),
		Total: c.Total,
	}
	for _, it := range c.Items {
		resp.Items = append(resp.Items, toCartItemResponse(it))
	}
	return resp
}

// Get handles GET /cart.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.GetCart(r.Context())
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCartResponse(c))
}

// AddItem handles POST /cart/items.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.svc.AddItem(r.Context(), cart.AddItemInput{
		DraftID:   req.DraftID,
		Quantity:  req.Quantity,
		OptionIDs: req.OptionIDs,
	})
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCartItemResponse(*item))
}

// UpdateItem handles PATCH /cart/items/{id}.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var req updateItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.UpdateItemQuantity(r.Context(), cart.UpdateItemInput{ItemID: id, Quantity: req.Quantity}); err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemoveItem handles DELETE /cart/items/{id}.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	if err := h.svc.RemoveItem(r.Context(), id); err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
