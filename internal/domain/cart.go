package domain

import (
	"time"

	"github.com/google/uuid"
)

// Product is a purchasable catalog item. BasePrice and option modifiers are
// in minor currency units (cents).
type Product struct {
	ID        uuid.UUID
	Name      string
	BasePrice int64
	Active    bool
	CreatedAt time.Time
}

// ProductOption is a selectable product variation with a price modifier.
type ProductOption struct {
	ID            uuid.UUID
	ProductID     uuid.UUID
	Name          string
	Value         string
	PriceModifier int64
}

// OptionSnapshot is a frozen copy of one selected product option, taken at
// add-to-cart time so later catalog changes never alter a pending cart line.
type OptionSnapshot struct {
	OptionID      uuid.UUID `json:"option_id"`
	Name          string    `json:"name"`
	Value         string    `json:"value"`
	PriceModifier int64     `json:"price_modifier"`
}

// Cart is a user's pending selection. Exactly one ACTIVE cart exists per
// user; it survives checkout and is cleared only on payment confirmation.
type Cart struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartItem is one cart line referencing a draft. Price is computed once at
// add time (base price plus option modifiers) and never re-derived.
type CartItem struct {
	ID        uuid.UUID
	CartID    uuid.UUID
	DraftID   uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	Price     int64
	Options   []OptionSnapshot
	CreatedAt time.Time
}

// CartDetail is a cart with its items and computed total.
type CartDetail struct {
	Cart
	Items []CartItem
	Total int64
}

// ComputeTotal sums quantity * price across items.
func (c *CartDetail) ComputeTotal() int64 {
	var total int64
	for _, it := range c.Items {
		total += int64(it.Quantity) * it.Price
	}
	return total
}
