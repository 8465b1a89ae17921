package launcher

import "errors"

var (
	ErrEmptyCommand  = errors.New("command argv cannot be empty")
	ErrAppNotFound   = errors.New("application not found")
	ErrUnknownAction = errors.New("unknown system action")
	ErrNotRunning    = errors.New("application is not running")
	ErrUnsupportedOS = errors.New("unsupported operating system")
)
