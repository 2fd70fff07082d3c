package attribute

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/edgeskills/edge-backend/internal/domain"
)

// ListAttributes returns the attribute catalogue in name order, each with
// the caller's submitted entry count.
func (s *Service) ListAttributes(ctx context.Context) ([]domain.AttributeSummary, error) {
	caller, err := s.authorize(ctx)
	if err != nil {
		return nil, err
	}

	attributes, err := s.catalog.AttributeTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("list attribute tags: %w", err)
	}

	summaries := make([]domain.AttributeSummary, 0, len(attributes))
	for _, attr := range attributes {
		submitted, err := s.entries.CountByAttribute(ctx, caller.ID, attr.Code, true)
		if err != nil {
			return nil, fmt.Errorf("count submitted entries for %s: %w", attr.Code, err)
		}
		summaries = append(summaries, domain.AttributeSummary{
			Code:             attr.Code,
			Name:             attr.Name,
			EntriesSubmitted: submitted,
		})
	}

	s.log.DebugContext(ctx, "attributes listed",
		slog.Int64("user_id", caller.ID),
		slog.Int("count", len(summaries)),
	)

	return summaries, nil
}
