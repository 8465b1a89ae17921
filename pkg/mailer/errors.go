package mailer

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/textproto"
	"strings"

	mail "github.com/wneessen/go-mail"
)

// Send failures are wrapped with one of these, next to the underlying SMTP error.
var (
	ErrAuth           = errors.New("smtp authentication failed")
	ErrRejected       = errors.New("recipient rejected")
	ErrTimeout        = errors.New("smtp timeout")
	ErrUnreachable    = errors.New("smtp server unreachable")
	ErrInvalidAddress = errors.New("invalid address")
)

// classify tags err with the matching sentinel. Unknown errors are returned as is.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}

	var tpErr *textproto.Error
	if errors.As(err, &tpErr) {
		switch tpErr.Code {
		case 530, 534, 535, 538:
			return fmt.Errorf("%w: %w", ErrAuth, err)
		case 550, 551, 553:
			return fmt.Errorf("%w: %w", ErrRejected, err)
		}
	}

	var sendErr *mail.SendError
	if errors.As(err, &sendErr) && sendErr.Reason == mail.ErrSMTPRcptTo {
		return fmt.Errorf("%w: %w", ErrRejected, err)
	}

	if strings.Contains(strings.ToLower(err.Error()), "smtp auth") {
		return fmt.Errorf("%w: %w", ErrAuth, err)
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return fmt.Errorf("%w: %w", ErrUnreachable, err)
	}
	return err
}
