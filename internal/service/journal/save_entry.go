package journal

import (
	"context"
	"log/slog"

	"github.com/edgeskills/edge-backend/internal/domain"
)

// SaveEntry creates a new entry (ID zero) or amends an existing one.
// Amending another user's entry is reported as not found. Returns the
// entry's id.
func (s *Service) SaveEntry(ctx context.Context, input SaveEntryInput) (int64, error) {
	caller, err := s.authorize(ctx)
	if err != nil {
		return 0, err
	}

	if err := input.Validate(); err != nil {
		return 0, err
	}

	entry := domain.Entry{
		ID:            input.ID,
		AuthorID:      caller.ID,
		ActivityID:    input.ActivityID,
		AttributeCode: input.AttributeCode,
		Title:         input.Title,
		Situation:     input.Situation,
		Task:          input.Task,
		Action:        input.Action,
		Result:        input.Result,
		Link:          input.Link,
		UpdateTime:    s.now(),
	}

	var id int64
	if input.ID != 0 {
		if err := s.entries.Update(ctx, &entry); err != nil {
			return 0, err
		}
		id = input.ID
	} else {
		id, err = s.entries.Create(ctx, &entry)
		if err != nil {
			return 0, err
		}
	}

	s.log.DebugContext(ctx, "entry saved",
		slog.Int64("user_id", caller.ID),
		slog.Int64("entry_id", id),
		slog.Bool("amended", input.ID != 0),
	)

	return id, nil
}
