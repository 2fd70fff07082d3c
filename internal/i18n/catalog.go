// Package i18n holds the localized message catalogue for submission
// feedback and award mail. Every user-facing sentence lives here so the
// services interpolate named arguments instead of concatenating prose.
package i18n

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Catalog resolves message IDs against the bundled translations.
type Catalog struct {
	localizer *i18n.Localizer
}

// NewCatalog builds the catalogue with the bundled English messages.
func NewCatalog() *Catalog {
	bundle := i18n.NewBundle(language.English)
	bundle.AddMessages(language.English,
		&i18n.Message{
			ID:    "submission_failure",
			Other: "Sorry, your submission only has a combined total of {{.WordCount}} words.  It must have at least {{.MinimumWords}}.",
		},
		&i18n.Message{
			ID:    "submission_first",
			Other: "Congratulations! You're on your way to getting the EDGE!",
		},
		&i18n.Message{
			ID:    "submission_general",
			Other: "Well done!  You have now submitted {{.Entries}} against {{.Attributes}}.",
		},
		&i18n.Message{
			ID:    "submission_award",
			Other: "Many congratulations! Having submitted {{.Entries}} against {{.Attributes}} you now have the EDGE!",
		},
		&i18n.Message{
			ID:    "certificate_message",
			Other: "You will be sent your certificate once your submissions have been verified.",
		},
		&i18n.Message{
			ID:    "award_notification",
			Other: "{{.FirstName}} {{.LastName}} ({{.Username}}) has the EDGE!",
		},
		&i18n.Message{
			ID:    "entry_count",
			One:   "1 entry",
			Other: "{{.Count}} entries",
		},
		&i18n.Message{
			ID:    "attribute_count",
			One:   "1 attribute",
			Other: "{{.Count}} attributes",
		},
		&i18n.Message{
			ID:    "salutation",
			Other: "Dear {{.FirstName}}",
		},
		&i18n.Message{
			ID:    "closing",
			Other: "Best wishes",
		},
		&i18n.Message{
			ID:    "award_title",
			Other: "The EDGE Award",
		},
	)

	return &Catalog{
		localizer: i18n.NewLocalizer(bundle, language.English.String()),
	}
}

// SubmissionFailure is the word-count shortfall message.
func (c *Catalog) SubmissionFailure(wordCount, minimumWords int) string {
	return c.localizer.MustLocalize(&i18n.LocalizeConfig{
		MessageID: "submission_failure",
		TemplateData: map[string]any{
			"WordCount":    wordCount,
			"MinimumWords": minimumWords,
		},
	})
}

// SubmissionFirst congratulates the very first submission.
func (c *Catalog) SubmissionFirst() string {
	return c.localizer.MustLocalize(&i18n.LocalizeConfig{MessageID: "submission_first"})
}

// SubmissionGeneral reports running totals after a submission that does not
// trigger the award. Entries and attributes are pre-pluralized phrases.
func (c *Catalog) SubmissionGeneral(entries, attributes string) string {
	return c.localizer.MustLocalize(&i18n.LocalizeConfig{
		MessageID: "submission_general",
		TemplateData: map[string]any{
			"Entries":    entries,
			"Attributes": attributes,
		},
	})
}

// SubmissionAward announces the award itself.
func (c *Catalog) SubmissionAward(entries, attributes string) string {
	return c.localizer.MustLocalize(&i18n.LocalizeConfig{
		MessageID: "submission_award",
		TemplateData: map[string]any{
			"Entries":    entries,
			"Attributes": attributes,
		},
	})
}

// CertificateMessage is the verification notice in the award mail.
func (c *Catalog) CertificateMessage() string {
	return c.localizer.MustLocalize(&i18n.LocalizeConfig{MessageID: "certificate_message"})
}

// AwardNotification is the body of the admin-facing award mail.
func (c *Catalog) AwardNotification(firstName, lastName, username string) string {
	return c.localizer.MustLocalize(&i18n.LocalizeConfig{
		MessageID: "award_notification",
		TemplateData: map[string]any{
			"FirstName": firstName,
			"LastName":  lastName,
			"Username":  username,
		},
	})
}

// EntryCount renders an entry total as a pluralized phrase.
func (c *Catalog) EntryCount(n int) string {
	return c.localizer.MustLocalize(&i18n.LocalizeConfig{
		MessageID:    "entry_count",
		TemplateData: map[string]any{"Count": n},
		PluralCount:  n,
	})
}

// AttributeCount renders an attribute total as a pluralized phrase.
func (c *Catalog) AttributeCount(n int) string {
	return c.localizer.MustLocalize(&i18n.LocalizeConfig{
		MessageID:    "attribute_count",
		TemplateData: map[string]any{"Count": n},
		PluralCount:  n,
	})
}

// Salutation opens the award mail.
func (c *Catalog) Salutation(firstName string) string {
	return c.localizer.MustLocalize(&i18n.LocalizeConfig{
		MessageID:    "salutation",
		TemplateData: map[string]any{"FirstName": firstName},
	})
}

// Closing signs off the award mail.
func (c *Catalog) Closing() string {
	return c.localizer.MustLocalize(&i18n.LocalizeConfig{MessageID: "closing"})
}

// AwardTitle is the subject line of both award mails.
func (c *Catalog) AwardTitle() string {
	return c.localizer.MustLocalize(&i18n.LocalizeConfig{MessageID: "award_title"})
}
