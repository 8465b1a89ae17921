package email

import "context"

// UseCase composes and sends email from a spoken or typed instruction.
type UseCase interface {
	// Send parses instruction, drafts a body when none is given and sends to every
	// recipient in order. Problems are reported in the Outcome, never as an error.
	Send(ctx context.Context, instruction string) Outcome
}

// Sender delivers one message to one recipient.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}
