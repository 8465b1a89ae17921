package speech

import "errors"

var (
	ErrNoCommand = errors.New("speech command not configured")
)
