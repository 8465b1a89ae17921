package reminder

import "errors"

var (
	ErrNoCalendar = errors.New("calendar not configured")
)
