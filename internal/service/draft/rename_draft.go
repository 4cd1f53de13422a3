package draft

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lumenprint/calendarshop-backend/internal/domain"
	"github.com/lumenprint/calendarshop-backend/pkg/ctxutil"
)

// RenameDraft changes a draft's title. The title is presentation metadata
// only, yet it still freezes with the rest of the design, so renames stop
// once the draft leaves EDITING.
func (s *Service) RenameDraft(ctx context.Context, input RenameDraftInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if _, err := s.getOwned(ctx, userID, input.DraftID); err != nil {
		return err
	}
	if err := s.policy.AssertEditable(ctx, input.DraftID); err != nil {
		return err
	}

	if err := s.drafts.UpdateTitle(ctx, input.DraftID, trimOrNil(input.Title)); err != nil {
		return fmt.Errorf("update title: %w", err)
	}

	s.log.InfoContext(ctx, "draft renamed",
		slog.String("user_id", userID.String()),
		slog.String("draft_id", input.DraftID.String()),
	)
	return nil
}
