package domain

// DraftState represents the lifecycle state of a design draft.
// Transitions only move forward: EDITING -> LOCKED -> ORDERED.
type DraftState string

const (
	DraftStateEditing DraftState = "EDITING"
	DraftStateLocked  DraftState = "LOCKED"
	DraftStateOrdered DraftState = "ORDERED"
)

func (s DraftState) String() string { return string(s) }

func (s DraftState) IsValid() bool {
	switch s {
	case DraftStateEditing, DraftStateLocked, DraftStateOrdered:
		return true
	}
	return false
}

// rank orders states along the one-way lifecycle.
func (s DraftState) rank() int {
	switch s {
	case DraftStateEditing:
		return 0
	case DraftStateLocked:
		return 1
	case DraftStateOrdered:
		return 2
	}
	return -1
}

// CanTransitionTo reports whether moving from s to next is legal.
// Only forward moves are allowed; a state never returns to an earlier one.
func (s DraftState) CanTransitionTo(next DraftState) bool {
	if !s.IsValid() || !next.IsValid() {
		return false
	}
	return next.rank() > s.rank()
}

// PaymentStatus represents the payment state of an order.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

func (s PaymentStatus) String() string { return string(s) }

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed:
		return true
	}
	return false
}

// OrderStatus represents the fulfillment state of an order. It evolves
// independently of PaymentStatus and, like DraftState, only moves forward.
type OrderStatus string

const (
	OrderStatusNew          OrderStatus = "NEW"
	OrderStatusInProduction OrderStatus = "IN_PRODUCTION"
	OrderStatusShipped      OrderStatus = "SHIPPED"
)

func (s OrderStatus) String() string { return string(s) }

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusNew, OrderStatusInProduction, OrderStatusShipped:
		return true
	}
	return false
}

func (s OrderStatus) rank() int {
	switch s {
	case OrderStatusNew:
		return 0
	case OrderStatusInProduction:
		return 1
	case OrderStatusShipped:
		return 2
	}
	return -1
}

// CanTransitionTo reports whether moving from s to next is legal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if !s.IsValid() || !next.IsValid() {
		return false
	}
	return next.rank() > s.rank()
}

// SlotContentType identifies what a layout slot holds.
type SlotContentType string

const (
	SlotContentImage SlotContentType = "IMAGE"
	SlotContentText  SlotContentType = "TEXT"
)

func (t SlotContentType) String() string { return string(t) }

func (t SlotContentType) IsValid() bool {
	switch t {
	case SlotContentImage, SlotContentText:
		return true
	}
	return false
}

// ActivityType identifies the kind of event recorded in the order activity log.
type ActivityType string

const (
	ActivityOrderPlaced          ActivityType = "ORDER_PLACED"
	ActivityPaymentStatusChanged ActivityType = "PAYMENT_STATUS_CHANGED"
	ActivityOrderStatusChanged   ActivityType = "ORDER_STATUS_CHANGED"
)

func (a ActivityType) String() string { return string(a) }

func (a ActivityType) IsValid() bool {
	switch a {
	case ActivityOrderPlaced, ActivityPaymentStatusChanged, ActivityOrderStatusChanged:
		return true
	}
	return false
}
