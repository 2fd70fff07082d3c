package journal

import (
	"context"
	"log/slog"

	"github.com/edgeskills/edge-backend/internal/domain"
)

// DeleteEntry removes one of the caller's entries, submitted or not.
// Another user's entry is reported as not found.
func (s *Service) DeleteEntry(ctx context.Context, entryID int64) error {
	caller, err := s.authorize(ctx)
	if err != nil {
		return err
	}

	if entryID < 1 {
		return domain.NewValidationError("id", "must be a positive integer")
	}

	if err := s.entries.Delete(ctx, caller.ID, entryID); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "entry deleted",
		slog.Int64("user_id", caller.ID),
		slog.Int64("entry_id", entryID),
	)

	return nil
}
