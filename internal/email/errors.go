package email

import "errors"

var (
	ErrMissingFields = errors.New(MsgUsage)
	ErrNoRecipient   = errors.New("no valid recipient address")
)
