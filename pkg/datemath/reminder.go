package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	clock12Re = regexp.MustCompile(`\b(\d{1,2})(?::(\d{2}))?\s*(am|pm|a\.m\.|p\.m\.)`)
	clock24Re = regexp.MustCompile(`\b([01]?\d|2[0-3]):([0-5]\d)\b`)
	dayMonRe  = regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)?(?:\s+of)?\s+(january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|sept|oct|nov|dec)\b`)
	monDayRe  = regexp.MustCompile(`\b(january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|sept|oct|nov|dec)\s+(\d{1,2})(?:st|nd|rd|th)?\b`)
	relDayRe  = regexp.MustCompile(`\b((?:the )?day after tomorrow|today|tonight|tomorrow|next week|(?:next|this|on) (?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)|monday|tuesday|wednesday|thursday|friday|saturday|sunday|in (?:\d+|a|an|one|two|three) (?:days?|weeks?|months?))\b`)
	fillerRe  = regexp.MustCompile(`^(?:(?:at|on|for|about|to|that|remind me|set a reminder|reminder)\s+)+`)
	spacesRe  = regexp.MustCompile(`\s+`)
)

var months = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September, "sept": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

// ParseReminder extracts a point in time and a message from text.
// Without a date the next occurrence of the time is used. Without a time the
// reminder is all day. Dates without a year that already passed roll to next year.
func (p *Parser) ParseReminder(text string, baseTime time.Time) (Reminder, error) {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return Reminder{}, fmt.Errorf("empty reminder")
	}
	base := baseTime.In(p.location)
	rest := lower

	hour, minute, hasTime, rest, err := extractClock(rest)
	if err != nil {
		return Reminder{}, err
	}

	day, hasDate, rest, err := p.extractDate(rest, base)
	if err != nil {
		return Reminder{}, err
	}

	if !hasDate && !hasTime {
		return Reminder{}, fmt.Errorf("no date or time found in %q", text)
	}
	if !hasDate {
		day = p.startOfDay(base)
	}

	r := Reminder{Message: cleanMessage(rest)}
	if !hasTime {
		r.AbsoluteTime = day
		r.IsAllDay = true
		return r, nil
	}

	at := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, p.location)
	if !hasDate && !at.After(base) {
		at = at.AddDate(0, 0, 1)
	}
	r.AbsoluteTime = at
	return r, nil
}

func extractClock(s string) (hour, minute int, found bool, rest string, err error) {
	if m := clock12Re.FindStringSubmatchIndex(s); m != nil {
		hour, _ = strconv.Atoi(s[m[2]:m[3]])
		if m[4] >= 0 {
			minute, _ = strconv.Atoi(s[m[4]:m[5]])
		}
		if hour < 1 || hour > 12 || minute > 59 {
			return 0, 0, false, s, fmt.Errorf("invalid time %q", s[m[0]:m[1]])
		}
		pm := strings.HasPrefix(s[m[6]:m[7]], "p")
		switch {
		case pm && hour != 12:
			hour += 12
		case !pm && hour == 12:
			hour = 0
		}
		return hour, minute, true, cut(s, m[0], m[1]), nil
	}
	if m := clock24Re.FindStringSubmatchIndex(s); m != nil {
		hour, _ = strconv.Atoi(s[m[2]:m[3]])
		minute, _ = strconv.Atoi(s[m[4]:m[5]])
		return hour, minute, true, cut(s, m[0], m[1]), nil
	}
	return 0, 0, false, s, nil
}

func (p *Parser) extractDate(s string, base time.Time) (time.Time, bool, string, error) {
	if m := dayMonRe.FindStringSubmatchIndex(s); m != nil {
		d, _ := strconv.Atoi(s[m[2]:m[3]])
		t, err := p.dayOfMonth(d, months[s[m[4]:m[5]]], base)
		return t, err == nil, cut(s, m[0], m[1]), err
	}
	if m := monDayRe.FindStringSubmatchIndex(s); m != nil {
		d, _ := strconv.Atoi(s[m[4]:m[5]])
		t, err := p.dayOfMonth(d, months[s[m[2]:m[3]]], base)
		return t, err == nil, cut(s, m[0], m[1]), err
	}
	if m := relDayRe.FindStringIndex(s); m != nil {
		t, err := p.Parse(s[m[0]:m[1]], base)
		return t, err == nil, cut(s, m[0], m[1]), err
	}
	return time.Time{}, false, s, nil
}

// dayOfMonth resolves a day and month to the next such date on or after base.
func (p *Parser) dayOfMonth(day int, month time.Month, base time.Time) (time.Time, error) {
	year := base.Year()
	t := time.Date(year, month, day, 0, 0, 0, 0, p.location)
	if t.Month() != month || day < 1 {
		return time.Time{}, fmt.Errorf("invalid date: %d %s", day, month)
	}
	if t.Before(p.startOfDay(base)) {
		t = time.Date(year+1, month, day, 0, 0, 0, 0, p.location)
	}
	return t, nil
}

func cut(s string, from, to int) string {
	return s[:from] + " " + s[to:]
}

func cleanMessage(s string) string {
	s = strings.TrimSpace(spacesRe.ReplaceAllString(s, " "))
	s = strings.TrimSpace(fillerRe.ReplaceAllString(s+" ", ""))
	return strings.Trim(s, " ,.")
}
