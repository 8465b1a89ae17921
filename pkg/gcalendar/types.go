package gcalendar

import "time"

const (
	DefaultCalendarID = "primary"
	DefaultTokenPath  = "token.json"

	dateLayout = "2006-01-02"
)

// CreateEventRequest describes one reminder event.
type CreateEventRequest struct {
	// CalendarID defaults to the primary calendar.
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	// EndTime is exclusive. For all day events it is midnight of the following day.
	EndTime  time.Time
	Timezone string // IANA name, e.g. "Europe/Berlin"
	AllDay   bool
	// ReminderMinutes adds a popup reminder that many minutes before the start. Zero keeps calendar defaults.
	ReminderMinutes int64
}

// Event is the part of a calendar event the assistant reads back.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
	Location    string
}

// ListEventsRequest selects single events starting in [TimeMin, TimeMax).
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
