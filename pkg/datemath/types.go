package datemath

import "time"

// ParseResult is a resolved point in time.
type ParseResult struct {
	AbsoluteTime time.Time
	// IsAllDay is set when no clock time was given; AbsoluteTime is then midnight.
	IsAllDay bool
}

// Reminder is a parsed "9:00pm 25th june meeting with team" style instruction.
type Reminder struct {
	ParseResult
	Message string
}
