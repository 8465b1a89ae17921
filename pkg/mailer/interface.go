package mailer

import "context"

// IMailer sends plain text email over SMTP.
type IMailer interface {
	Send(ctx context.Context, msg Message) error
}

// New creates an SMTP mailer.
func New(cfg Config) (IMailer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &mailerImpl{cfg: cfg}, nil
}
