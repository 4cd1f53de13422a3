// Package design holds the pure functions over draft and template read
// models: the completeness validator and the snapshot builder. Keeping them
// free of I/O guarantees the same draft is judged identically whether the
// check runs before locking, before cart checkout, or before order creation.
package design

import (
	"fmt"
	"sort"

	"github.com/lumenprint/calendarshop-backend/internal/domain"
)

// CompletenessResult reports whether a draft fills every required template
// slot. MissingSlots holds stable "slot-<index>" labels in slot-index order.
type CompletenessResult struct {
	Complete     bool
	MissingSlots []string
}

// CheckCompleteness compares a draft's slots against the template's slot
// list. A required (editable) slot is missing if the draft has no slot at
// that index, or has one without an assigned image. Text slots are not
// subject to the image requirement.
func CheckCompleteness(draftSlots []domain.DraftSlot, templateSlots []domain.TemplateSlot) CompletenessResult {
	byIndex := make(map[int]domain.DraftSlot, len(draftSlots))
	for _, s := range draftSlots {
		byIndex[s.SlotIndex] = s
	}

	var missing []int
	for _, ts := range templateSlots {
		if !ts.Editable || ts.ContentType != domain.SlotContentImage {
			continue
		}
		ds, ok := byIndex[ts.SlotIndex]
		if !ok || ds.ImageID == nil {
			missing = append(missing, ts.SlotIndex)
		}
	}
	sort.Ints(missing)

	labels := make([]string, len(missing))
	for i, idx := range missing {
		labels[i] = SlotLabel(idx)
	}

	return CompletenessResult{
		Complete:     len(labels) == 0,
		MissingSlots: labels,
	}
}

// SlotLabel formats the stable, human-referenceable token for a slot index.
func SlotLabel(index int) string {
	return fmt.Sprintf("slot-%d", index)
}
