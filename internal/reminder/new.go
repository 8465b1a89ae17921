package reminder

import (
	"time"

	"voice-assistant/pkg/datemath"
	"voice-assistant/pkg/gcalendar"
	pkgLog "voice-assistant/pkg/log"
)

type usecase struct {
	cfg      Config
	calendar gcalendar.IClient
	dates    *datemath.Parser
	now      func() time.Time
	l        pkgLog.Logger
}

// Ensure usecase implements UseCase interface
var _ UseCase = (*usecase)(nil)

// New creates the reminder use case. calendar may be nil when no credentials are configured.
func New(cfg Config, calendar gcalendar.IClient, dates *datemath.Parser, l pkgLog.Logger) UseCase {
	if cfg.Duration <= 0 {
		cfg.Duration = defaultDuration
	}
	if cfg.CalendarID == "" {
		cfg.CalendarID = gcalendar.DefaultCalendarID
	}
	return &usecase{
		cfg:      cfg,
		calendar: calendar,
		dates:    dates,
		now:      time.Now,
		l:        l,
	}
}
