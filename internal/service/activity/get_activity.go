package activity

import (
	"context"
	"fmt"

	"github.com/edgeskills/edge-backend/internal/domain"
)

// GetActivity returns one activity with the caller's joined flag set.
// Returns domain.ErrNotFound if the activity does not exist.
func (s *Service) GetActivity(ctx context.Context, activityID int64) (*domain.Activity, error) {
	caller, err := s.authorize(ctx)
	if err != nil {
		return nil, err
	}

	if err := validateActivityID(activityID); err != nil {
		return nil, err
	}

	act, err := s.catalog.GetActivity(ctx, activityID)
	if err != nil {
		return nil, err
	}

	joined, err := s.enrolments.IsEnrolled(ctx, caller.ID, act.ID)
	if err != nil {
		return nil, fmt.Errorf("check enrolment: %w", err)
	}
	act.Joined = joined

	return act, nil
}
