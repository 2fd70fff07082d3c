package submission

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/edgeskills/edge-backend/internal/domain"
)

// Auto-responder suppression headers carried by both award mails.
var awardMailHeaders = map[string]string{
	"Precedence":               "Bulk",
	"X-Auto-Response-Suppress": "All",
	"Auto-Submitted":           "auto-generated",
}

// SubmitEntry submits one of the caller's entries and returns the feedback
// message. A submission below the word-count threshold changes nothing and
// reports the shortfall. Otherwise the entry is marked submitted and, when
// the caller's totals first reach both award thresholds, the award is
// granted exactly once and both notification mails go out. Mail failures
// are logged, never surfaced; the award stands regardless.
func (s *Service) SubmitEntry(ctx context.Context, entryID int64) (string, error) {
	caller, err := s.authorize(ctx)
	if err != nil {
		return "", err
	}

	if entryID < 1 {
		return "", domain.NewValidationError("id", "must be a positive integer")
	}

	entry, err := s.entries.GetByID(ctx, caller.ID, entryID)
	if err != nil {
		return "", err
	}

	words := entry.WordCount()
	if words < s.thresholds.MinimumWords {
		return s.messages.SubmissionFailure(words, s.thresholds.MinimumWords), nil
	}

	var (
		totals  domain.SubmissionTotals
		awarded bool
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.entries.SetSubmitted(txCtx, caller.ID, entryID, s.now()); err != nil {
			return err
		}

		var err error
		totals, err = s.entries.SubmissionTotals(txCtx, caller.ID)
		if err != nil {
			return err
		}

		held, err := s.awards.Exists(txCtx, caller.ID)
		if err != nil {
			return err
		}
		if held || totals.Entries < s.thresholds.MinimumEntries || totals.Attributes < s.thresholds.MinimumAttributes {
			return nil
		}

		if err := s.awards.Create(txCtx, domain.Award{RecipientID: caller.ID, AwardTime: s.now()}); err != nil {
			// A concurrent submission got there first.
			if errors.Is(err, domain.ErrAlreadyExists) {
				return nil
			}
			return err
		}
		awarded = true
		return nil
	})
	if err != nil {
		return "", err
	}

	entries := s.messages.EntryCount(totals.Entries)
	attributes := s.messages.AttributeCount(totals.Attributes)

	var message string
	switch {
	case awarded:
		message = s.messages.SubmissionAward(entries, attributes)
		s.log.InfoContext(ctx, "award granted",
			slog.Int64("user_id", caller.ID),
			slog.Int("entries", totals.Entries),
			slog.Int("attributes", totals.Attributes),
		)
		s.sendAwardMail(ctx, caller.ID, message)
	case totals.Entries > 1:
		message = s.messages.SubmissionGeneral(entries, attributes)
	default:
		message = s.messages.SubmissionFirst()
	}

	return message, nil
}

// sendAwardMail delivers the congratulation mail to the recipient and the
// notification mail to the award administrator.
func (s *Service) sendAwardMail(ctx context.Context, recipientID int64, awardMessage string) {
	recipient, err := s.users.GetByID(ctx, recipientID)
	if err != nil {
		s.log.ErrorContext(ctx, "award mail skipped: recipient lookup failed",
			slog.Int64("user_id", recipientID), slog.Any("error", err))
		return
	}
	admin, err := s.users.GetByUsername(ctx, domain.AdminUsername)
	if err != nil {
		s.log.ErrorContext(ctx, "award mail skipped: admin lookup failed",
			slog.String("username", domain.AdminUsername), slog.Any("error", err))
		return
	}

	subject := s.messages.AwardTitle()

	paragraphs := []string{
		s.messages.Salutation(recipient.FirstName),
		awardMessage,
		s.messages.CertificateMessage(),
		s.messages.Closing(),
		admin.FirstName + " " + admin.LastName,
	}
	congrats := domain.Mail{
		To:      *recipient,
		Subject: subject,
		Text:    strings.Join(paragraphs, "\n\n"),
		HTML:    "<p>" + strings.Join(paragraphs, "</p><p>") + "</p>",
		Headers: awardMailHeaders,
	}
	if err := s.mail.Send(ctx, congrats); err != nil {
		s.log.ErrorContext(ctx, "award congratulation mail failed",
			slog.Int64("user_id", recipientID), slog.Any("error", err))
	}

	body := s.messages.AwardNotification(recipient.FirstName, recipient.LastName, recipient.Username)
	notification := domain.Mail{
		To:      *admin,
		Subject: subject,
		Text:    body,
		HTML:    "<p>" + body + "</p>",
		Headers: awardMailHeaders,
	}
	if err := s.mail.Send(ctx, notification); err != nil {
		s.log.ErrorContext(ctx, "award notification mail failed",
			slog.String("username", admin.Username), slog.Any("error", err))
	}
}
