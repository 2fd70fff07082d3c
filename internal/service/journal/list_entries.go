package journal

import (
	"context"
	"fmt"

	"github.com/edgeskills/edge-backend/internal/domain"
)

// ListEntries returns the caller's entries in title order, optionally
// restricted to one attribute. An empty attribute code means all entries.
func (s *Service) ListEntries(ctx context.Context, attributeCode string) ([]domain.EntryRef, error) {
	caller, err := s.authorize(ctx)
	if err != nil {
		return nil, err
	}

	refs, err := s.entries.List(ctx, caller.ID, attributeCode)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	return refs, nil
}
