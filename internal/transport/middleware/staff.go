package middleware

import (
	"context"

	"github.com/lumenprint/calendarshop-backend/internal/domain"
	"github.com/lumenprint/calendarshop-backend/pkg/ctxutil"
)

// RequireStaff returns domain.ErrForbidden unless the context user carries
// the staff role. Fulfillment endpoints (order status updates) call this
// inside the handler, not as HTTP middleware, so the error maps through the
// usual domain-error responder.
func RequireStaff(ctx context.Context) error {
	if !ctxutil.IsStaffCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}
