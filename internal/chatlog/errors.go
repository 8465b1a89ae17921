package chatlog

import "errors"

var (
	ErrEmptyPath = errors.New("chat log path is empty")
	ErrRead      = errors.New("failed to read chat log")
	ErrWrite     = errors.New("failed to write chat log")
)
