// Package mailer implements outbound notification delivery over SMTP.
package mailer

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/edgeskills/edge-backend/internal/config"
	"github.com/edgeskills/edge-backend/internal/domain"
)

// Mailer sends notification mail through one SMTP relay.
type Mailer struct {
	client *gomail.Client
	from   string
}

// New creates a Mailer connected to the configured SMTP relay. Credentials
// are optional; when the username is empty the client authenticates with
// nothing, which suits local relays.
func New(cfg config.MailConfig) (*Mailer, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}

	return &Mailer{client: client, from: cfg.From}, nil
}

// Send delivers one message. The recipient address comes from the user
// record; extra headers are applied verbatim.
func (m *Mailer) Send(ctx context.Context, mail domain.Mail) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("set mail sender: %w", err)
	}
	if err := msg.To(mail.To.Email); err != nil {
		return fmt.Errorf("set mail recipient: %w", err)
	}
	msg.Subject(mail.Subject)
	msg.SetBodyString(gomail.TypeTextPlain, mail.Text)
	if mail.HTML != "" {
		msg.AddAlternativeString(gomail.TypeTextHTML, mail.HTML)
	}
	for name, value := range mail.Headers {
		msg.SetGenHeader(gomail.Header(name), value)
	}

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", mail.To.Email, err)
	}

	return nil
}
