package attribute

import (
	"context"
	"fmt"

	"github.com/edgeskills/edge-backend/internal/domain"
)

// GetAttributeInput holds the parameters identifying one attribute.
type GetAttributeInput struct {
	Name string
	Code string
}

// GetAttribute returns one attribute's details together with the caller's
// submitted and not-yet-submitted entry counts for it. Name and code are
// not validated up front: a blank or unknown pair composes a label no
// catalogue tag carries, so the lookup misses.
func (s *Service) GetAttribute(ctx context.Context, input GetAttributeInput) (*domain.AttributeDetail, error) {
	caller, err := s.authorize(ctx)
	if err != nil {
		return nil, err
	}

	label := domain.ComposeAttributeLabel(input.Name, input.Code)
	attr, err := s.catalog.AttributeByLabel(ctx, label)
	if err != nil {
		return nil, err
	}

	submitted, err := s.entries.CountByAttribute(ctx, caller.ID, attr.Code, true)
	if err != nil {
		return nil, fmt.Errorf("count submitted entries: %w", err)
	}
	notSubmitted, err := s.entries.CountByAttribute(ctx, caller.ID, attr.Code, false)
	if err != nil {
		return nil, fmt.Errorf("count unsubmitted entries: %w", err)
	}

	return &domain.AttributeDetail{
		Name:                attr.Name,
		Description:         attr.Description,
		EntriesSubmitted:    submitted,
		EntriesNotSubmitted: notSubmitted,
	}, nil
}
