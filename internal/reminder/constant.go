package reminder

import "time"

const (
	defaultTitle    = "Reminder"
	defaultDuration = 30 * time.Minute
	upcomingLimit   = 20

	MsgUsage        = "Reminder needs a date or time. Example: reminder 9:00pm 25th june meeting with team"
	MsgUnconfigured = "Calendar is not configured, so I could not set the reminder."
	MsgCreateFailed = "I could not save the reminder to your calendar."
	msgSetTimed     = "Reminder set for %s at %s: %s."
	msgSetAllDay    = "Reminder set for %s: %s."
	dayLayout       = "Mon 2 Jan 2006"
	clockLayout     = "3:04 PM"
)
