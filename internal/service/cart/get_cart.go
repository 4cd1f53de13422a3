package cart

import (
	"context"

	"github.com/lumenprint/calendarshop-backend/internal/domain"
	"github.com/lumenprint/calendarshop-backend/pkg/ctxutil"
)

// GetCart returns the authenticated user's ACTIVE cart with its items and
// total, creating an empty cart on first access.
func (s *Service) GetCart(ctx context.Context) (*domain.CartDetail, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.activeCart(ctx, userID)
}
