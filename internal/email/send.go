package email

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"voice-assistant/pkg/mailer"
)

func (uc *usecase) Send(ctx context.Context, instruction string) Outcome {
	cmd, err := ParseCommand(instruction)
	if err != nil {
		uc.l.Infof(ctx, "%s: cannot parse %q: %v", LogPrefixSend, instruction, err)
		switch {
		case errors.Is(err, ErrNoRecipient):
			return Outcome{Message: MsgNoRecipient + " " + MsgUsage}
		default:
			return Outcome{Message: MsgUsage}
		}
	}

	if uc.sender == nil {
		return Outcome{Message: MsgSMTPUnconfigured, Subject: cmd.Subject}
	}

	out := Outcome{Subject: cmd.Subject, Body: cmd.Body}
	if out.Body == "" {
		out.Body = uc.draft(ctx, cmd.Subject, cmd.About)
		out.Drafted = true
	}

	for _, addr := range cmd.Recipients() {
		res := RecipientResult{Address: addr, OK: true}
		if err := uc.sender.Send(ctx, addr, out.Subject, out.Body); err != nil {
			uc.l.Errorf(ctx, "%s: %s: %v", LogPrefixSend, addr, err)
			res.OK = false
			res.Error = failureReason(err)
		}
		out.Recipients = append(out.Recipients, res)
	}

	out.OK, out.Message = summarize(out.Recipients)
	return out
}

// failureReason turns a delivery error into words fit for the user.
func failureReason(err error) string {
	switch {
	case errors.Is(err, mailer.ErrAuth):
		return reasonAuth
	case errors.Is(err, mailer.ErrRejected):
		return reasonRejected
	case errors.Is(err, mailer.ErrTimeout):
		return reasonTimeout
	case errors.Is(err, mailer.ErrUnreachable):
		return reasonUnreachable
	case errors.Is(err, mailer.ErrInvalidAddress):
		return reasonInvalid
	default:
		return MsgDeliveryFailed
	}
}

func summarize(results []RecipientResult) (bool, string) {
	var sent, failed []string
	for _, r := range results {
		if r.OK {
			sent = append(sent, r.Address)
		} else {
			failed = append(failed, fmt.Sprintf("%s (%s)", r.Address, r.Error))
		}
	}

	switch {
	case len(failed) == 0:
		return true, "Email sent to " + strings.Join(sent, ", ") + "."
	case len(sent) == 0:
		return false, "Email failed for " + strings.Join(failed, ", ") + "."
	default:
		return false, "Email sent to " + strings.Join(sent, ", ") + ". Failed for " + strings.Join(failed, ", ") + "."
	}
}
