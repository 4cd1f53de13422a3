package domain

import (
	"time"

	"github.com/google/uuid"
)

// Draft is a user's in-progress product design. It mutates freely while in
// EDITING, becomes read-only once LOCKED, and terminates in ORDERED.
type Draft struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	ProductID  uuid.UUID
	TemplateID uuid.UUID
	State      DraftState
	Title      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Transform holds position, scale, and rotation applied to a slot or image.
type Transform struct {
	OffsetX  float64 `json:"offset_x"`
	OffsetY  float64 `json:"offset_y"`
	Scale    float64 `json:"scale"`
	Rotation float64 `json:"rotation"`
}

// DraftSlot is one design slot within a draft (e.g. one calendar page).
// SlotIndex is the stable positional key; the optional image assignment is a
// relation to an ImageAsset, not inlined metadata.
type DraftSlot struct {
	ID          uuid.UUID
	DraftID     uuid.UUID
	SlotIndex   int
	ContentType SlotContentType
	Transform   *Transform
	ImageID     *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SlotUpdate holds the optional fields of a slot mutation. Nil fields are
// left untouched; ClearImage removes the image assignment explicitly.
type SlotUpdate struct {
	Transform  *Transform
	ImageID    *uuid.UUID
	ClearImage bool
}

/// DraftSlotDetail is the read model used for snapshot building: a slot joined
// with the full metadata of its assigned image, if any.
type DraftSlotDetail struct {
	DraftSlot
	Image *ImageAsset
}

// TemplateSlot is one entry of a product template's canonical slot list.
// Editable slots are the ones a design must fill before checkout.
type TemplateSlot struct {
	ID          uuid.UUID
	TemplateID  uuid.UUID
	SlotIndex   int
	ContentType SlotContentType
	Editable    bool
	MaxImages   int
	AspectRatio float64
}

// Template is a product's canonical layout definition.
type Template struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	Name      string
	Active    bool
	CreatedAt time.Time
}

// ImageAsset is an uploaded image's durable metadata. StorageID is the
// storage system's immutable identifier; SecureURL stays resolvable
// independently of this row.
type ImageAsset struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	StorageID string
	SecureURL string
	Width     int
	Height    int
	CreatedAt time.Time
}
