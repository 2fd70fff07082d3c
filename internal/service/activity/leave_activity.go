package activity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/edgeskills/edge-backend/internal/domain"
)

// LeaveActivity removes the caller's self-service enrolment from an
// activity. Returns domain.ErrEnrolmentUnavailable when the activity has
// no enabled self-service channel or the channel forbids self-unenrolment;
// domain.ErrNotFound when the caller is not enrolled through it.
func (s *Service) LeaveActivity(ctx context.Context, activityID int64) error {
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
	if !channel.AllowSelfUnenrol {
		return fmt.Errorf("activity %d: %w", activityID, domain.ErrEnrolmentUnavailable)
	}

	if err := s.enrolments.Unenrol(ctx, caller.ID, channel.ID); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "activity left",
		slog.Int64("user_id", caller.ID),
		slog.Int64("activity_id", activityID),
	)

	return nil
}
