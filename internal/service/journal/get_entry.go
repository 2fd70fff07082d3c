package journal

import (
	"context"

	"github.com/edgeskills/edge-backend/internal/domain"
)

// GetEntry returns one of the caller's entries with its activity name
// resolved. Another user's entry is reported as not found.
func (s *Service) GetEntry(ctx context.Context, entryID int64) (*domain.EntryDetail, error) {
	caller, err := s.authorize(ctx)
	if err != nil {
		return nil, err
	}

	if entryID < 1 {
		return nil, domain.NewValidationError("id", "must be a positive integer")
	}

	entry, err := s.entries.GetByID(ctx, caller.ID, entryID)
	if err != nil {
		return nil, err
	}

	act, err := s.catalog.GetActivity(ctx, entry.ActivityID)
	if err != nil {
		return nil, err
	}

	return &domain.EntryDetail{
		Entry:        *entry,
		ActivityName: act.ShortName,
	}, nil
}
