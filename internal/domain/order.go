package domain

import (
	"time"

	"github.com/google/uuid"
)

// Order is the immutable result of checkout. Only PaymentStatus and
// OrderStatus change after creation.
type Order struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	CartID        uuid.UUID
	PaymentStatus PaymentStatus
	OrderStatus   OrderStatus
	Total         int64
	Shipping      ShippingSnapshot
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderItem is one frozen order line. Design holds everything needed to
// render the item; nothing in it requires the source draft or image rows to
// still exist.
type OrderItem struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	Quantity    int
	Price       int64
	Options     []OptionSnapshot
	Design      DesignSnapshot
	CreatedAt   time.Time
}

// DesignSnapshot is a self-contained copy of a draft's design, embedded in an
// order item at checkout. DraftID is kept for traceability only and must
// never be used for lookups when rendering.
type DesignSnapshot struct {
	DraftID    uuid.UUID      `json:"draft_id"`
	ProductID  uuid.UUID      `json:"product_id"`
	TemplateID uuid.UUID      `json:"template_id"`
	Title      *string        `json:"title,omitempty"`
	Slots      []SlotSnapshot `json:"slots"`
}

// SlotSnapshot is one layout slot within a design snapshot.
type SlotSnapshot struct {
	SlotIndex   int             `json:"slot_index"`
	ContentType SlotContentType `json:"content_type"`
	Transform   *Transform      `json:"transform,omitempty"`
	Images      []ImageSnapshot `json:"images,omitempty"`
}

// ImageSnapshot is a by-value copy of an assigned image. ImageRefID is the
// originating ImageAsset row, recorded for debugging only.
type ImageSnapshot struct {
	ImageRefID uuid.UUID  `json:"image_ref_id"`
	StorageID  string     `json:"storage_id"`
	SecureURL  string     `json:"secure_url"`
	Width      int        `json:"width"`
	Height     int        `json:"height"`
	Transform  *Transform `json:"transform,omitempty"`
}

// DraftIDs returns the draft ids embedded in the given items' snapshots,
// deduplicated, in item order. Payment reconciliation uses this instead of
// re-deriving drafts from a live cart.
func DraftIDs(items []OrderItem) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(items))
	ids := make([]uuid.UUID, 0, len(items))
	for _, it := range items {
		id := it.Design.DraftID
		if id == uuid.Nil || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// ShippingSnapshot is the frozen delivery destination and customer contact
// captured at checkout.
type ShippingSnapshot struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// OrderActivity is one append-only audit log entry attached to an order.
type OrderActivity struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	Type        ActivityType
	Description string
	Metadata    map[string]any
	CreatedAt   time.Time
}
