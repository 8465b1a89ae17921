package assistant

import "errors"

var (
	ErrEmptyUtterance = errors.New("empty utterance")
)
