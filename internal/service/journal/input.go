package journal

import (
	"strings"

	"github.com/edgeskills/edge-backend/internal/domain"
)

// SaveEntryInput holds the parameters for creating or amending an entry.
// ID zero means create. Link is the only optional narrative field.
type SaveEntryInput struct {
	ID            int64
	ActivityID    int64
	AttributeCode string
	Title         string
	Situation     string
	Task          string
	Action        string
	Result        string
	Link          string
}

// Validate checks all fields and collects all errors.
func (i SaveEntryInput) Validate() error {
	var errs []domain.FieldError

	if i.ID < 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "must not be negative"})
	}
	if i.ActivityID < 1 {
		errs = append(errs, domain.FieldError{Field: "activity_id", Message: "must be a positive integer"})
	}

	required := []struct {
		field string
		value string
	}{
		{"attribute_code", i.AttributeCode},
		{"title", i.Title},
		{"situation", i.Situation},
		{"task", i.Task},
		{"action", i.Action},
		{"result", i.Result},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, domain.FieldError{Field: r.field, Message: "required"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
