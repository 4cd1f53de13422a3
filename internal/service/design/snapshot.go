package design

import (
	"github.com/lumenprint/calendarshop-backend/internal/domain"
)

// BuildSnapshot converts a draft's current design state into the immutable
// structure stored inside an order item. Every field an order needs to render
// is copied by value: nothing in the result is resolvable only through the
// live draft or image tables, so the order stays renderable after the source
// rows are deleted. The draft id is embedded for traceability only.
func BuildSnapshot(d *domain.Draft, slots []domain.DraftSlotDetail) domain.DesignSnapshot {
	snap := domain.DesignSnapshot{
		DraftID:    d.ID,
		ProductID:  d.ProductID,
		TemplateID: d.TemplateID,
		Title:      copyStringPtr(d.Title),
		Slots:      make([]domain.SlotSnapshot, 0, len(slots)),
	}

	for _, s := range slots {
		slot := domain.SlotSnapshot{
			SlotIndex:   s.SlotIndex,
			ContentType: s.ContentType,
			Transform:   copyTransform(s.Transform),
		}
		if s.Image != nil {
			slot.Images = []domain.ImageSnapshot{{
				ImageRefID: s.Image.ID,
				StorageID:  s.Image.StorageID,
				SecureURL:  s.Image.SecureURL,
				Width:      s.Image.Width,
				Height:     s.Image.Height,
				Transform:  copyTransform(s.Transform),
			}}
		}
		snap.Slots = append(snap.Slots, slot)
	}

	return snap
}

// copyTransform returns an independent copy so later mutation of the draft's
// transform cannot reach into an already-built snapshot.
func copyTransform(t *domain.Transform) *domain.Transform {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func copyStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
