package reminder

import "time"

// Config holds reminder settings.
type Config struct {
	CalendarID string
	Timezone   string
	// Duration of timed events. Defaults to 30 minutes.
	Duration time.Duration
	// ReminderMinutes adds a popup before timed events. Zero keeps calendar defaults.
	ReminderMinutes int64
}

// Result is the user visible outcome of a reminder instruction.
type Result struct {
	OK      bool
	Message string
	At      time.Time
	AllDay  bool
	Link    string
}

// Entry is an upcoming reminder read back from the calendar.
type Entry struct {
	Title  string
	At     time.Time
	AllDay bool
	Link   string
}
