package mailer

import (
	"context"
	"errors"
	"fmt"

	mail "github.com/wneessen/go-mail"
)

func (m *mailerImpl) Send(ctx context.Context, msg Message) error {
	email, err := m.build(msg)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(m.cfg.Host, m.options()...)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, email); err != nil {
		return fmt.Errorf("send mail: %w", classify(err))
	}
	return nil
}

func (m *mailerImpl) options() []mail.Option {
	policy := mail.TLSOpportunistic
	if m.cfg.UseTLS {
		policy = mail.TLSMandatory
	}
	return []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
		mail.WithTLSPolicy(policy),
		mail.WithTimeout(m.cfg.Timeout),
	}
}

func (m *mailerImpl) build(msg Message) (*mail.Msg, error) {
	if len(msg.To) == 0 {
		return nil, errors.New("at least one recipient is required")
	}

	email := mail.NewMsg()
	if err := email.From(m.cfg.From); err != nil {
		return nil, fmt.Errorf("invalid from address %q: %w", m.cfg.From, err)
	}
	if err := email.To(msg.To...); err != nil {
		return nil, fmt.Errorf("%w: to: %w", ErrInvalidAddress, err)
	}
	if len(msg.Cc) > 0 {
		if err := email.Cc(msg.Cc...); err != nil {
			return nil, fmt.Errorf("%w: cc: %w", ErrInvalidAddress, err)
		}
	}
	if len(msg.Bcc) > 0 {
		if err := email.Bcc(msg.Bcc...); err != nil {
			return nil, fmt.Errorf("%w: bcc: %w", ErrInvalidAddress, err)
		}
	}
	email.Subject(msg.Subject)
	email.SetBodyString(mail.TypeTextPlain, msg.Body)
	return email, nil
}
