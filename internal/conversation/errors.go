package conversation

import "errors"

var (
	ErrEmptyQuery  = errors.New("empty query")
	ErrEmptyAnswer = errors.New("empty answer")
)
