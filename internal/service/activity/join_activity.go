package activity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/edgeskills/edge-backend/internal/domain"
)

// JoinActivity enrols the caller in an activity through its self-service
// channel. Returns domain.ErrEnrolmentUnavailable when the activity has no
// enabled self-service channel or the caller is already enrolled, matching
// the behaviour of self-enrolment in the upstream enrolment system.
func (s *Service) JoinActivity(ctx context.Context, activityID int64) error {
	caller, err := s.authorize(ctx)
	if err != nil {
		return err
	}

	if err := validateActivityID(activityID); err != nil {
		return err
	}

	channel, err := s.enrolments.SelfChannel(ctx, activityID)
	if err != nil {
		return err
	}

	enrolled, err := s.enrolments.IsEnrolled(ctx, caller.ID, activityID)
	if err != nil {
		return fmt.Errorf("check enrolment: %w", err)
	}
	if enrolled {
		return fmt.Errorf("activity %d: %w", activityID, domain.ErrEnrolmentUnavailable)
	}

	if err := s.enrolments.Enrol(ctx, caller.ID, channel.ID); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "activity joined",
		slog.Int64("user_id", caller.ID),
		slog.Int64("activity_id", activityID),
	)

	return nil
}
