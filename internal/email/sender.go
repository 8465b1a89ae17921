package email

import (
	"context"

	"voice-assistant/pkg/mailer"
)

type smtpSender struct {
	m mailer.IMailer
}

// NewSMTPSender adapts an SMTP mailer to Sender.
func NewSMTPSender(m mailer.IMailer) Sender {
	return &smtpSender{m: m}
}

func (s *smtpSender) Send(ctx context.Context, to, subject, body string) error {
	return s.m.Send(ctx, mailer.Message{
		To:      []string{to},
		Subject: subject,
		Body:    body,
	})
}
