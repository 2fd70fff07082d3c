package activity

import (
	"context"
)

// GetActivityAttributes returns the attribute codes an activity develops,
// in the order they appear in the activity's classification.
// Returns domain.ErrNotFound if the activity does not exist.
func (s *Service) GetActivityAttributes(ctx context.Context, activityID int64) ([]string, error) {
	if _, err := s.authorize(ctx); err != nil {
		return nil, err
	}

	if err := validateActivityID(activityID); err != nil {
		return nil, err
	}

	act, err := s.catalog.GetActivity(ctx, activityID)
	if err != nil {
		return nil, err
	}

	codes := make([]string, 0, len(act.AttributeCodes))
	codes = append(codes, act.AttributeCodes...)

	return codes, nil
}
