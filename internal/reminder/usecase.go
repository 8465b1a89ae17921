package reminder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"voice-assistant/pkg/gcalendar"
)

// Create parses the instruction and stores it as a calendar event.
func (uc *usecase) Create(ctx context.Context, instruction string) Result {
	parsed, err := uc.dates.ParseReminder(instruction, uc.now())
	if err != nil {
		uc.l.Warnf(ctx, "internal.reminder.Create: parse %q: %v", instruction, err)
		return Result{Message: MsgUsage}
	}
	if uc.calendar == nil {
		return Result{Message: MsgUnconfigured}
	}

	title := parsed.Message
	if title == "" {
		title = defaultTitle
	}
	req := gcalendar.CreateEventRequest{
		CalendarID:  uc.cfg.CalendarID,
		Summary:     capitalize(title),
		Description: strings.TrimSpace(instruction),
		StartTime:   parsed.AbsoluteTime,
		Timezone:    uc.cfg.Timezone,
		AllDay:      parsed.IsAllDay,
	}
	if parsed.IsAllDay {
		req.EndTime = parsed.AbsoluteTime.AddDate(0, 0, 1)
	} else {
		req.EndTime = parsed.AbsoluteTime.Add(uc.cfg.Duration)
		req.ReminderMinutes = uc.cfg.ReminderMinutes
	}

	event, err := uc.calendar.CreateEvent(ctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "internal.reminder.Create: calendar.CreateEvent: %v", err)
		return Result{Message: MsgCreateFailed, At: parsed.AbsoluteTime, AllDay: parsed.IsAllDay}
	}

	uc.l.Infof(ctx, "internal.reminder.Create: event=%s at=%s all_day=%t", event.ID, parsed.AbsoluteTime.Format(time.RFC3339), parsed.IsAllDay)

	res := Result{
		OK:     true,
		At:     parsed.AbsoluteTime,
		AllDay: parsed.IsAllDay,
		Link:   event.HtmlLink,
	}
	if parsed.IsAllDay {
		res.Message = fmt.Sprintf(msgSetAllDay, parsed.AbsoluteTime.Format(dayLayout), title)
	} else {
		res.Message = fmt.Sprintf(msgSetTimed, parsed.AbsoluteTime.Format(dayLayout), parsed.AbsoluteTime.Format(clockLayout), title)
	}
	return res
}

// Upcoming lists calendar events starting within the given window.
func (uc *usecase) Upcoming(ctx context.Context, within time.Duration) ([]Entry, error) {
	if uc.calendar == nil {
		return nil, ErrNoCalendar
	}
	now := uc.now()
	events, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.cfg.CalendarID,
		TimeMin:    now,
		TimeMax:    now.Add(within),
		MaxResults: upcomingLimit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.reminder.Upcoming: calendar.ListEvents: %v", err)
		return nil, fmt.Errorf("list events: %w", err)
	}

	entries := make([]Entry, 0, len(events))
	for _, e := range events {
		entries = append(entries, Entry{
			Title:  e.Summary,
			At:     e.StartTime,
			AllDay: e.AllDay,
			Link:   e.HtmlLink,
		})
	}
	return entries, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
