package activity

import (
	"context"
	"fmt"
	"sort"

	"github.com/edgeskills/edge-backend/internal/domain"
)

// ListAllActivities returns every visible activity with its full
// classification, ordered by name. No eligibility filter is applied; this
// is the browsing view of the whole catalogue.
func (s *Service) ListAllActivities(ctx context.Context) ([]domain.Activity, error) {
	if _, err := s.authorize(ctx); err != nil {
		return nil, err
	}

	activities, err := s.catalog.ListEdgeActivities(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	visible := make([]domain.Activity, 0, len(activities))
	for _, act := range activities {
		if act.Visible {
			visible = append(visible, act)
		}
	}
	sort.Slice(visible, func(i, j int) bool { return visible[i].Name < visible[j].Name })

	return visible, nil
}
