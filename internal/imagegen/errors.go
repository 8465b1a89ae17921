package imagegen

import "errors"

var (
	ErrEmptyPrompt = errors.New("image prompt is empty")
	ErrClosed      = errors.New("image service is closed")
)
