package draft

import "github.com/lumenprint/calendarshop-backend/internal/domain"

// DraftDetail is a draft together with its slots and their assigned images.
type DraftDetail struct {
	Draft domain.Draft
	Slots []domain.DraftSlotDetail
}

// DraftList is one page of a user's drafts plus the total count.
type DraftList struct {
	Drafts []*domain.Draft
	Total  int
}
