package activity

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/edgeskills/edge-backend/internal/domain"
)

// ListActivities returns the activities the caller is eligible for,
// ordered by short name, optionally restricted to those developing one
// attribute. Eligibility means the activity's faculty is among the
// caller's resolved faculties; placement students bypass the faculty
// filter entirely. Hidden activities are listed only when already joined.
func (s *Service) ListActivities(ctx context.Context, input ListActivitiesInput) ([]domain.ActivityRef, error) {
	caller, err := s.authorize(ctx)
	if err != nil {
		return nil, err
	}

	placement := domain.IsPlacementUsername(caller.Username)

	var faculties []string
	if !placement {
		categories, err := s.enrolments.StudentCategories(ctx, caller.ID)
		if err != nil {
			return nil, fmt.Errorf("resolve faculties: %w", err)
		}
		faculties = domain.ResolveFaculties(categories)
	}

	activities, err := s.catalog.ListEdgeActivities(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	refs := []domain.ActivityRef{}
	for _, act := range activities {
		if !placement && !slices.Contains(faculties, act.Faculty) {
			continue
		}
		if input.AttributeCode != "" && !slices.Contains(act.AttributeCodes, input.AttributeCode) {
			continue
		}

		joined, err := s.enrolments.IsEnrolled(ctx, caller.ID, act.ID)
		if err != nil {
			return nil, fmt.Errorf("check enrolment for activity %d: %w", act.ID, err)
		}
		if !joined && !act.Visible {
			continue
		}

		refs = append(refs, domain.ActivityRef{
			ID:     act.ID,
			Name:   act.ShortName,
			Joined: joined,
		})
	}

	s.log.DebugContext(ctx, "activities listed",
		slog.Int64("user_id", caller.ID),
		slog.Bool("placement", placement),
		slog.Int("count", len(refs)),
	)

	return refs, nil
}
